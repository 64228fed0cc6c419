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

package adapter

import (
	"reflect"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/module"
	"github.com/kcenon/common-system/result"
)

// IsZeroCost reports whether Create[I, Impl] returns the implementation
// itself instead of a wrapper. It holds when the concrete type Impl
// implements I. An interface-typed Impl is never zero cost, because its
// dynamic type is unknown until a value exists.
func IsZeroCost[I, Impl any]() bool {
	var zero Impl
	_, ok := any(zero).(I)
	return ok
}

// Create binds impl to the interface I.
//
// On the zero-cost path impl is returned re-typed as I and bind is not
// called; it may be nil. Otherwise impl is wrapped and bind builds the shim.
// Failures are returned as errors and logged:
//
//   - code.InvalidArgument for a nil impl (typed nil pointers included),
//     an empty Shared or Unique holder, a missing bind or a bind returning
//     nil;
//   - code.AdapterChainTooDeep when the new wrapper would exceed the depth
//     limit.
func Create[I, Impl any](impl Impl, bind func(*Wrapper[Impl]) I, opts ...Option) result.Result[I] {
	cfg := newConfig(opts)

	if isNil(impl) {
		return fail[I, Impl](cfg, common.New(code.InvalidArgument, "nil implementation"))
	}
	if !holderValid(impl) {
		return fail[I, Impl](cfg, common.New(code.InvalidArgument, "empty holder",
			common.WithDetails(TraitsOf[Impl]().Shape.String())))
	}

	if IsZeroCost[I, Impl]() {
		return result.Ok(any(impl).(I))
	}

	if bind == nil {
		return fail[I, Impl](cfg, common.New(code.InvalidArgument, "implementation does not satisfy the interface and no bind function was given"))
	}

	w := wrap(impl, cfg)
	if w.IsErr() {
		return fail[I, Impl](cfg, w.Err())
	}

	h := bind(w.Value())
	if any(h) == nil {
		return fail[I, Impl](cfg, common.New(code.InvalidArgument, "bind returned nil"))
	}
	return result.Ok(h)
}

// MustCreate is Create for wiring code that cannot continue without the
// binding. It panics with the ErrorInfo on failure.
func MustCreate[I, Impl any](impl Impl, bind func(*Wrapper[Impl]) I, opts ...Option) I {
	r := Create(impl, bind, opts...)
	if r.IsErr() {
		panic(r.Err())
	}
	return r.Value()
}

func isNil[Impl any](impl Impl) bool {
	if any(impl) == nil {
		return true
	}
	v := reflect.ValueOf(impl)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Map:
		return v.IsNil()
	}
	return false
}

// holderValid checks the holder shapes. Value shapes always pass.
func holderValid[Impl any](impl Impl) bool {
	if TraitsOf[Impl]().Shape == ShapeValue {
		return true
	}
	if h, ok := any(impl).(interface{ Valid() bool }); ok {
		return h.Valid()
	}
	return true
}

func fail[I, Impl any](cfg config, e common.ErrorInfo) result.Result[I] {
	if e.Module() == "" {
		e = e.WithModule(module.Adapter.String())
	}
	cfg.logger.Error("adapter binding failed",
		"error", e,
		"impl_type", uint64(TypeIDOf[Impl]()),
		"interface_type", uint64(TypeIDOf[I]()),
	)
	return result.Err[I](e)
}

// TryUnwrap recovers the concrete T behind handle h.
//
// It succeeds when h is itself a T, when h is a wrapper whose wrapped type
// token equals TypeIDOf[T](), or when h wraps a non-empty Shared or Unique
// holder of T's pointee (T being the pointer type). Only one wrapper layer
// is peeled; see UnwrapAll. A mismatch returns false and is not an error.
func TryUnwrap[T, I any](h I) (T, bool) {
	var zero T
	if t, ok := any(h).(T); ok {
		return t, true
	}
	b, ok := any(h).(Base)
	if !ok || !b.IsAdapter() {
		return zero, false
	}
	if b.ImplTypeID() == TypeIDOf[T]() {
		if u, ok := any(h).(interface{ Unwrap() T }); ok {
			return u.Unwrap(), true
		}
		return zero, false
	}
	return heldObject[T](h)
}

// UnwrapAll is TryUnwrap that follows the wrapper chain down to the bare
// implementation.
func UnwrapAll[T, I any](h I) (T, bool) {
	var cur any = h
	for cur != nil {
		if t, ok := cur.(T); ok {
			return t, true
		}
		in, ok := cur.(inner)
		if !ok {
			break
		}
		cur = in.Inner()
	}
	var zero T
	return zero, false
}

// DepthOf returns the wrapper depth of h, 0 for anything that is not a
// wrapper.
func DepthOf(h any) int {
	if b, ok := h.(Base); ok {
		return b.AdapterDepth()
	}
	return 0
}

// IsAdapter reports whether h is a wrapper or a shim embedding one.
func IsAdapter(h any) bool {
	b, ok := h.(Base)
	return ok && b.IsAdapter()
}
