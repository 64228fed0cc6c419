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
	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/module"
)

// Optional holds a value of type T or nothing. The zero Optional is None.
type Optional[T any] struct {
	value T
	some  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, some: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSome() bool { return o.some }
func (o Optional[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.some }

// Unwrap returns the value. It panics with a *ContractViolation on None.
func (o Optional[T]) Unwrap() T {
	if !o.some {
		panic(&ContractViolation{
			Op:   "Unwrap",
			Info: common.New(code.NotFound, "Called unwrap on None", common.WithModule(module.Result.String())),
		})
	}
	return o.value
}

// UnwrapOr returns the value, or def on None.
func (o Optional[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// OkOr converts o into a Result, using e when o is None.
func (o Optional[T]) OkOr(e common.ErrorInfo) Result[T] {
	if o.some {
		return Ok(o.value)
	}
	return Err[T](e)
}

// MapOptional applies f to the value of o, if any.
func MapOptional[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// ToOptional drops the error of r, keeping only the value.
func ToOptional[T any](r Result[T]) Optional[T] {
	if v, ok := GetIfOk(r); ok {
		return Some(v)
	}
	return None[T]()
}
