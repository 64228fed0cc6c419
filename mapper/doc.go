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

// Package mapper resolves error codes, optionally refined by the producing
// module, into HTTP and gRPC statuses.
//
// # Resolution model
//
// A Mapper resolves a (code, module) pair in this order:
//
//  1. exact override for the code;
//  2. per-code longest-prefix match on the module;
//  3. per-code default;
//  4. per-category default (the band the code belongs to);
//  5. global fallback (500 / codes.Internal unless configured).
//
// Module rules are segment-aware: "network" matches "network.tcp" but not
// "networking", and "*" matches exactly one segment:
//
//	mapper.WithHTTPPrefix(code.NetworkSendFailed, "network.*.tls", http.StatusBadGateway)
//
// The category tier lets a subsystem that ships new codes inside its band get
// a reasonable status without touching the mapper.
//
// # Building a mapper
//
// A Mapper is built once and shared:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Cancelled, 499),
//	    mapper.WithHTTPPrefix(code.Timeout, "database", http.StatusServiceUnavailable),
//	)
//
//	st := m.Status(code.Timeout, "database.query")
//	// st.HTTP == 503, st.GRPC == codes.DeadlineExceeded
//
// Rules can also be kept in a YAML document and turned into options with
// LoadRules.
//
// # Diagnostics
//
// Explain returns a human-readable trace of the tier that matched. It is
// meant for inspection and tests, not for machine parsing.
package mapper
