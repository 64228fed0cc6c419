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

// Package apis defines the small public contracts of the error model.
//
// Transport adapters, mappers and subsystems that only need to *inspect* an
// error target these interfaces instead of the concrete ErrorInfo type, so
// the dependency graph stays flat: apis imports only the code and module
// packages.
//
// The package contains interfaces and plain view types only.
package apis
