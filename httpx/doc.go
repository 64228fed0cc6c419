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

// Package httpx writes common.ErrorInfo values as HTTP responses and reads
// them back.
//
// The body is the shared wire shape plus a correlation id:
//
//	{"code":-2,"message":"user not found","module":"database.users","correlation_id":"..."}
//
// The status line comes from an apis.Mapper.
package httpx
