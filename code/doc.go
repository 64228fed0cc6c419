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

// Package code defines the shared numeric error code space.
//
// A code is a signed integer. Zero means success; every failure is negative
// and lives inside the band owned by the subsystem that reports it:
//
//	    0           success
//	   -1 ..   -99  common (foundation layer)
//	 -100 ..  -199  thread_system
//	 -200 ..  -299  logger_system
//	 -300 ..  -399  monitoring_system
//	 -400 ..  -499  container_system
//	 -500 ..  -599  database_system
//	 -600 ..  -699  network_system
//	-1000 and below reserved for future systems
//
// The bands are a contract other repositories depend on. Values must never
// be renumbered; new codes are only ever appended inside their band.
//
// Besides the numeric constants the package keeps a small registry with the
// canonical symbol (e.g. "NOT_FOUND") and default message of every known
// code, so that transport layers and logs can render codes without each
// subsystem shipping its own tables.
package code
