/*
   Copyright 2025 The kcenon Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package adapter binds concrete implementations to the interfaces other
// subsystems consume, without runtime reflection.
//
// Create[I, Impl] picks one of two paths, decided by the (I, Impl) type pair
// alone:
//
//   - zero cost: Impl already satisfies I, so the implementation itself is
//     returned as an I. Nothing is allocated and the handle has depth 0.
//   - wrapped: Impl does not satisfy I. The implementation is placed in a
//     Wrapper and the caller-supplied bind function builds the forwarding
//     shim that implements I. The shim embeds the Wrapper, so it reports its
//     depth and the identity of the wrapped type through Base.
//
// A typical binding site:
//
//	type loggerShim struct{ *adapter.Wrapper[*stdout.Writer] }
//
//	func (s loggerShim) Log(msg string) { s.Unwrap().WriteLine(msg) }
//
//	log := adapter.MustCreate[ILogger](w, func(w *adapter.Wrapper[*stdout.Writer]) ILogger {
//	    return loggerShim{w}
//	})
//
// TryUnwrap recovers the concrete implementation behind a handle. It peels a
// single wrapper layer; UnwrapAll follows the whole chain.
//
// Wrappers add no synchronization. Whether a forwarded call is safe for
// concurrent use depends on the wrapped implementation and should be stated
// at the binding site.
package adapter
