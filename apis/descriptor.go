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

// ErrorDescriptor is a flat description of an error together with the
// transport statuses it resolved to.
//
// It is meant for structured logs, traces and audit records, where the
// reader wants the symbolic name and the category next to the raw code
// without consulting the registry.
type ErrorDescriptor struct {
	// Code is the numeric code.
	Code int32 `json:"code"`

	// Symbol is the registry name of the code, e.g. "NOT_FOUND". Empty for
	// codes unknown to the registry.
	Symbol string `json:"symbol,omitempty"`

	// Category is the snake_case band name, e.g. "network_system".
	Category string `json:"category"`

	Module string `json:"module,omitempty"`

	// HTTPStatus and GRPCCode are the resolved statuses. Zero means "not
	// resolved".
	HTTPStatus int `json:"http_status,omitempty"`
	GRPCCode   int `json:"grpc_code,omitempty"`

	Message string `json:"message,omitempty"`
}
