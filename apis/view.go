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

// ViewProvider is implemented by errors that can render their wire shape.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the wire shape of an error: {code, message, module, details?}.
//
// The field set and JSON names are part of the cross-repository contract.
// Details is a pointer so that "absent" and "empty" stay distinguishable
// after a JSON round trip.
type ErrorView struct {
	Code    int32   `json:"code"`
	Message string  `json:"message"`
	Module  string  `json:"module"`
	Details *string `json:"details,omitempty"`
}
