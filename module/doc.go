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

// Package module defines the identifiers used in the module field of an
// error: the component that produced the failure.
//
// A module is a dotted, lowercase path naming a subsystem and optionally a
// component inside it:
//
//   - "common.result"
//   - "network.tcp"
//   - "database.pool"
//   - "logger.writer.async"
//
// The empty module is valid and means that the origin was not recorded.
// Identifiers written in other conventions ("network::tcp", "network/tcp",
// "Network-Tcp") are accepted by Parse and brought to the canonical form.
package module
