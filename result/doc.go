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

// Package result provides Result[T], the value-or-error return type used at
// every module boundary of the ecosystem.
//
// A Result holds exactly one of a value of type T or a common.ErrorInfo.
// Expected failures travel as Err results and are composed with Map, AndThen
// and OrElse. Misusing the API itself (reading the value of an error result,
// or the error of a success) is a programming defect and panics with a
// *ContractViolation.
//
// The zero Result is not a success: it reports the NotInitialized error, the
// same as Uninitialized. Declare results without a value only when they are
// assigned on every path before use.
package result
