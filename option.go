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

import "fmt"

// Option is a functional option for New. It receives the ErrorInfo under
// construction and returns the modified copy.
type Option func(ErrorInfo) ErrorInfo

// WithModule attributes the error to module m.
func WithModule(m string) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithModule(m)
	}
}

// WithDetails sets the optional details.
func WithDetails(d string) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithDetails(d)
	}
}

// WithDetailsf sets the optional details from a format string.
func WithDetailsf(format string, args ...any) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithDetails(fmt.Sprintf(format, args...))
	}
}

// WithCause attaches an underlying Go error.
func WithCause(err error) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithCause(err)
	}
}
