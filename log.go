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

package common

import (
	"log/slog"

	"github.com/kcenon/common-system/code"
)

var _ slog.LogValuer = ErrorInfo{}

// LogValue renders e as a group so that handlers emit structured fields
// instead of the flat Error string:
//
//	logger.Error("dial failed", "error", e)
//	// error.code=-601 error.category=network_system error.message=... error.module=network.tcp
func (e ErrorInfo) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.Int("code", int(e.code)),
		slog.String("category", code.CategoryOf(e.code).String()),
		slog.String("message", e.message),
	)
	if e.module != "" {
		attrs = append(attrs, slog.String("module", e.module))
	}
	if e.hasDetails {
		attrs = append(attrs, slog.String("details", e.details))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}
