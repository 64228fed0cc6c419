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

package result

import (
	"errors"
	"fmt"
	"runtime"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
)

// ErrInvalidArgument can be wrapped by a function run under TryCatch to have
// the failure reported as code.InvalidArgument instead of InternalError.
var ErrInvalidArgument = errors.New("invalid argument")

// TryCatch runs f and turns its outcome into a Result. A returned error or a
// panic becomes an ErrorInfo attributed to module; nothing escapes.
//
// Classification follows common.FromError, except that otherwise
// unclassified errors wrapping ErrInvalidArgument map to
// code.InvalidArgument.
func TryCatch[T any](module string, f func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Err[T](fromPanic(p, module))
		}
	}()
	v, err := f()
	if err != nil {
		return Err[T](classify(err, module))
	}
	return Ok(v)
}

// TryCatchVoid is TryCatch for functions without a value.
func TryCatchVoid(module string, f func() error) Void {
	return TryCatch(module, func() (struct{}, error) {
		return struct{}{}, f()
	})
}

func classify(err error, module string) common.ErrorInfo {
	e := common.FromError(err, module)
	if e.Code() == code.InternalError && errors.Is(err, ErrInvalidArgument) {
		return common.New(code.InvalidArgument, err.Error(),
			common.WithModule(module), common.WithCause(err))
	}
	if e.Module() == "" {
		e = e.WithModule(module)
	}
	return e
}

func fromPanic(p any, module string) common.ErrorInfo {
	switch v := p.(type) {
	case *ContractViolation:
		return common.New(code.InternalError, v.Error(),
			common.WithModule(module), common.WithCause(v))
	case runtime.Error:
		return common.New(code.InternalError, "panic: "+v.Error(),
			common.WithModule(module), common.WithCause(v))
	case error:
		return classify(v, module)
	default:
		return common.New(code.InternalError, fmt.Sprintf("panic: %v", v),
			common.WithModule(module))
	}
}
