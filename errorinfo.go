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

package common

import (
	"fmt"
	"strconv"

	"github.com/kcenon/common-system/apis"
	"github.com/kcenon/common-system/code"
)

// ErrorInfo describes a failure: a numeric code from the shared code space,
// a human message, the producing module and optional free-form details.
//
// ErrorInfo is an immutable value. The WithX helpers return modified copies,
// so values can be shared between goroutines and stored in results freely.
// Two ErrorInfo values describe the same failure when Equal reports true;
// the optional cause is not part of that comparison nor of the wire shape.
// Compare with Equal, not ==: the cause may hold an error whose dynamic type
// is not comparable, and == panics on it.
type ErrorInfo struct {
	code       code.Code
	message    string
	module     string
	details    string
	hasDetails bool
	cause      error
}

var (
	_ apis.CodedError    = ErrorInfo{}
	_ apis.ModuleError   = ErrorInfo{}
	_ apis.DetailedError = ErrorInfo{}
	_ apis.CausedError   = ErrorInfo{}
	_ apis.ViewProvider  = ErrorInfo{}
)

// New builds an ErrorInfo and applies opts in order.
func New(c code.Code, msg string, opts ...Option) ErrorInfo {
	e := ErrorInfo{code: c, message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Newf is New with a formatted message.
func Newf(c code.Code, format string, args ...any) ErrorInfo {
	return ErrorInfo{code: c, message: fmt.Sprintf(format, args...)}
}

// FromCode builds an ErrorInfo carrying the registry message of c.
func FromCode(c code.Code, module string) ErrorInfo {
	return ErrorInfo{code: c, message: code.Message(c), module: module}
}

// Code returns the numeric error code.
func (e ErrorInfo) Code() code.Code { return e.code }

// Message returns the human-readable description.
func (e ErrorInfo) Message() string { return e.message }

// Module returns the producing module, or "" when unrecorded.
func (e ErrorInfo) Module() string { return e.module }

// Details returns the optional details and whether they are present.
func (e ErrorInfo) Details() (string, bool) { return e.details, e.hasDetails }

// Cause returns the wrapped Go error, if any.
func (e ErrorInfo) Cause() error { return e.cause }

// Category returns the band the code belongs to.
func (e ErrorInfo) Category() code.Category { return code.CategoryOf(e.code) }

func (e ErrorInfo) ErrorCode() code.Code         { return e.code }
func (e ErrorInfo) ErrorModule() string          { return e.module }
func (e ErrorInfo) ErrorDetails() (string, bool) { return e.details, e.hasDetails }

// Error implements the error interface.
//
// The format is
//
//	[<module>: ]<SYMBOL>(<code>): <message>[ [details: <details>]]
//
// Codes unknown to the registry render as "code=<n>".
func (e ErrorInfo) Error() string {
	var s string
	if sym := code.Name(e.code); sym != "" {
		s = sym + "(" + strconv.Itoa(int(e.code)) + "): " + e.message
	} else {
		s = "code=" + strconv.Itoa(int(e.code)) + ": " + e.message
	}
	if e.module != "" {
		s = e.module + ": " + s
	}
	if e.hasDetails {
		s += " [details: " + e.details + "]"
	}
	return s
}

// Unwrap returns the cause so that errors.Is and errors.As see through the
// ErrorInfo.
func (e ErrorInfo) Unwrap() error { return e.cause }

// Is reports whether target is an ErrorInfo with the same code. When the
// target carries a module, the module must match too. Message and details
// are ignored, which makes sentinel-style checks work:
//
//	errors.Is(err, common.New(code.NotFound, ""))
func (e ErrorInfo) Is(target error) bool {
	var t ErrorInfo
	switch v := target.(type) {
	case ErrorInfo:
		t = v
	case *ErrorInfo:
		if v == nil {
			return false
		}
		t = *v
	default:
		return false
	}
	if t.code != e.code {
		return false
	}
	return t.module == "" || t.module == e.module
}

// Equal reports whether e and o describe the same failure. The cause is
// ignored.
func (e ErrorInfo) Equal(o ErrorInfo) bool {
	return e.code == o.code &&
		e.message == o.message &&
		e.module == o.module &&
		e.hasDetails == o.hasDetails &&
		e.details == o.details
}

// WithMessage returns a copy of e with a replaced message.
func (e ErrorInfo) WithMessage(msg string) ErrorInfo {
	e.message = msg
	return e
}

// WithModule returns a copy of e attributed to module m.
func (e ErrorInfo) WithModule(m string) ErrorInfo {
	e.module = m
	return e
}

// WithDetails returns a copy of e with details set. An empty string is still
// "present".
func (e ErrorInfo) WithDetails(d string) ErrorInfo {
	e.details = d
	e.hasDetails = true
	return e
}

// WithoutDetails returns a copy of e with the details removed.
func (e ErrorInfo) WithoutDetails() ErrorInfo {
	e.details = ""
	e.hasDetails = false
	return e
}

// WithCause returns a copy of e wrapping err. A nil err leaves e unchanged.
func (e ErrorInfo) WithCause(err error) ErrorInfo {
	if err == nil {
		return e
	}
	e.cause = err
	return e
}

// HasCode reports whether err is, or wraps, an ErrorInfo with code c.
func HasCode(err error, c code.Code) bool {
	return err != nil && CodeOf(err) == c
}
