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

// Package common is the foundation layer shared by every subsystem of the
// ecosystem (thread, logger, monitoring, container, database, network).
//
// It provides ErrorInfo, the structured error carried across every module
// boundary, and the conversions between ErrorInfo and plain Go errors. The
// companion packages build on it:
//
//   - code: the partitioned numeric code space and its registry;
//   - module: identifiers for the component that produced an error;
//   - result: Result[T], the value-or-error return type;
//   - adapter: binding implementations to interfaces without reflection;
//   - mapper, grpcx, httpx, otelx: projecting errors onto transports.
//
// Usage:
//
//	return result.Err[Conn](common.New(code.NetworkConnectionRefused,
//	    "dial 10.0.0.7:5432 refused",
//	    common.WithModule("network.tcp"),
//	    common.WithDetails("retry in 5s"),
//	))
package common
