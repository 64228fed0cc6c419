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

import (
	"google.golang.org/grpc/codes"

	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/module"
)

// Mapper is an immutable, concurrency-safe view of the status mapping rules.
// It resolves an error code, optionally refined by the producing module,
// into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given code and module.
	// When no module-specific rule exists the mapper falls back to the
	// code-level rule, then to the category-level rule.
	HTTPStatus(c code.Code, m module.Module) int

	// GRPCStatus returns the gRPC status code for the given code and module,
	// with the same fallback as HTTPStatus.
	GRPCStatus(c code.Code, m module.Module) codes.Code

	// Status resolves both in a single call.
	Status(c code.Code, m module.Module) Status

	// Explain describes which rule matched.
	Explain(c code.Code, m module.Module) string
}

// Status is a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // net/http compatible status.
	GRPC codes.Code // gRPC status code.
}
