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

package httpx

import (
	"net/http"

	"github.com/kcenon/common-system/result"
)

// Handler adapts a function returning a Result into an http.Handler.
//
// A success is written as JSON with status 200, or 204 without a body
// when T is struct{} (result.Void). Failures, including an uninitialized
// Result, go through w.
func Handler[T any](w *Writer, f func(*http.Request) result.Result[T]) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		res := f(r)
		if res.IsErr() {
			w.Write(rw, r, res.Err())
			return
		}
		v := res.Value()
		if _, ok := any(v).(struct{}); ok {
			rw.WriteHeader(http.StatusNoContent)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(rw).Encode(v); err != nil {
			w.logger.ErrorContext(r.Context(), "encode response", "error", err)
		}
	})
}
