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
	"fmt"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/module"
)

type state uint8

const (
	stateUninitialized state = iota
	stateOk
	stateErr
)

// uninitialized is the error carried by a Result that was never assigned.
var uninitialized = common.New(code.NotInitialized, "Result not initialized",
	common.WithModule(module.Result.String()),
)

// Result holds either a value of type T or an ErrorInfo, never both.
//
// Results are plain values: copying one copies its payload, and nothing is
// shared between copies.
type Result[T any] struct {
	value T
	err   common.ErrorInfo
	state state
}

// Void is the Result of an operation that produces no value.
type Void = Result[struct{}]

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, state: stateOk}
}

// OkVoid returns a successful Void.
func OkVoid() Void {
	return Void{state: stateOk}
}

// Err returns a failed Result holding e.
func Err[T any](e common.ErrorInfo) Result[T] {
	return Result[T]{err: e, state: stateErr}
}

// ErrCode is shorthand for Err(common.New(c, msg, opts...)).
func ErrCode[T any](c code.Code, msg string, opts ...common.Option) Result[T] {
	return Err[T](common.New(c, msg, opts...))
}

// Uninitialized returns the explicit "not yet assigned" Result. It is an
// error result with code NotInitialized and module "common.result", and is
// indistinguishable from the zero Result.
func Uninitialized[T any]() Result[T] {
	return Result[T]{}
}

// From bridges an idiomatic (value, error) pair into a Result. A non-nil err
// is converted with common.FromError.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](common.FromError(err, ""))
	}
	return Ok(v)
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.state == stateOk }

// IsErr reports whether r holds an error. Uninitialized results are errors.
func (r Result[T]) IsErr() bool { return r.state != stateOk }

// IsUninitialized reports whether r is the zero / Uninitialized result.
func (r Result[T]) IsUninitialized() bool { return r.state == stateUninitialized }

// Value returns the held value. It panics with a *ContractViolation when r
// holds an error.
func (r Result[T]) Value() T {
	if r.state != stateOk {
		panic(&ContractViolation{Op: "Value", Info: r.errInfo()})
	}
	return r.value
}

// Err returns the held error. It panics with a *ContractViolation when r
// holds a value.
func (r Result[T]) Err() common.ErrorInfo {
	if r.state == stateOk {
		panic(&ContractViolation{Op: "Err"})
	}
	return r.errInfo()
}

// UnwrapOr returns the held value, or def when r holds an error.
func (r Result[T]) UnwrapOr(def T) T {
	if r.state == stateOk {
		return r.value
	}
	return def
}

// ValueOr is an alias of UnwrapOr.
func (r Result[T]) ValueOr(def T) T { return r.UnwrapOr(def) }

// Unpack converts r back to the (value, error) convention. The error is nil
// on success and an ErrorInfo otherwise.
func (r Result[T]) Unpack() (T, error) {
	if r.state == stateOk {
		return r.value, nil
	}
	var zero T
	return zero, r.errInfo()
}

// Map applies f to the held value. Errors pass through and f is not called.
// Use the package-level Map to change the value type.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.state != stateOk {
		return r
	}
	return Ok(f(r.value))
}

// AndThen chains an operation that may itself fail. Errors short-circuit.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if r.state != stateOk {
		return r
	}
	return f(r.value)
}

// OrElse calls f with the error to attempt recovery. Successes are returned
// unchanged and f is not called.
func (r Result[T]) OrElse(f func(common.ErrorInfo) Result[T]) Result[T] {
	if r.state == stateOk {
		return r
	}
	return f(r.errInfo())
}

// MapErr rewrites the error, e.g. to attach a module or details. Successes
// are returned unchanged.
func (r Result[T]) MapErr(f func(common.ErrorInfo) common.ErrorInfo) Result[T] {
	if r.state == stateOk {
		return r
	}
	return Err[T](f(r.errInfo()))
}

func (r Result[T]) String() string {
	if r.state == stateOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return "Err(" + r.errInfo().Error() + ")"
}

func (r Result[T]) errInfo() common.ErrorInfo {
	if r.state == stateUninitialized {
		return uninitialized
	}
	return r.err
}

// Map applies f to the value of r and re-types the Result. On error f is not
// called and the same error is returned as Result[U].
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.state != stateOk {
		return Err[U](r.errInfo())
	}
	return Ok(f(r.value))
}

// AndThen applies f to the value of r and returns its Result as is, without
// double wrapping. On error f is not called.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.state != stateOk {
		return Err[U](r.errInfo())
	}
	return f(r.value)
}

// GetIfOk returns the value and true when r holds one.
func GetIfOk[T any](r Result[T]) (T, bool) {
	if r.state == stateOk {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetIfErr returns the error and true when r holds one.
func GetIfErr[T any](r Result[T]) (common.ErrorInfo, bool) {
	if r.state == stateOk {
		return common.ErrorInfo{}, false
	}
	return r.errInfo(), true
}

// ContractViolation is the panic value raised when a Result is read in the
// wrong state. It signals a programming defect and is never returned as an
// error result.
type ContractViolation struct {
	// Op is the misused accessor, e.g. "Value".
	Op string
	// Info is the error held by the Result when Op was "Value".
	Info common.ErrorInfo
}

func (v *ContractViolation) Error() string {
	if v.Op == "Err" {
		return "result: Err called on a success result"
	}
	return fmt.Sprintf("result: %s called on an error result: %v", v.Op, v.Info)
}
