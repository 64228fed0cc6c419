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

// Package grpcx projects common.ErrorInfo onto gRPC.
//
// A failed call carries a *status.Status whose code comes from an
// apis.Mapper and whose details include one google.rpc.ErrorInfo:
//
//	reason   = code symbol, e.g. "NOT_FOUND"
//	domain   = module, e.g. "network.tcp"
//	metadata = {"code": "-2", "details": "..."}
//
// FromError reverses the projection on the client side so that callers
// get the same four fields the server produced.
package grpcx
