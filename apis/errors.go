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

package apis

import "github.com/kcenon/common-system/code"

// CodedError is an error classified by a numeric code from the shared code
// space. Adapters use the code to pick transport statuses; an error that
// does not implement CodedError is treated as code.InternalError at the
// boundary.
type CodedError interface {
	error

	// ErrorCode returns the numeric error code. It is never code.Success for
	// a real failure.
	ErrorCode() code.Code
}

// ModuleError is an error that records which component produced it.
//
// The code answers "what went wrong", the module answers "where". Modules
// are dotted paths such as "network.tcp"; the empty string means the origin
// was not recorded.
type ModuleError interface {
	error

	// ErrorModule returns the producing module. May be empty.
	ErrorModule() string
}

// DetailedError exposes the optional free-form details of an error.
//
// Details are distinct from "present but empty": ok reports presence.
type DetailedError interface {
	error

	ErrorDetails() (details string, ok bool)
}

// CausedError exposes the direct underlying cause of an error, if any.
type CausedError interface {
	error

	// Cause returns the immediate cause or nil.
	Cause() error
}
