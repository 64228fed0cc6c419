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

package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/apis"
	"github.com/kcenon/common-system/mapper"
	"github.com/kcenon/common-system/module"
)

// HeaderCorrelationID is read from requests and echoed on error responses.
const HeaderCorrelationID = "X-Correlation-ID"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Body is the JSON document written for a failed request.
type Body struct {
	apis.ErrorView
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Option configures a Writer.
type Option func(*Writer)

// WithMapper sets the mapper used to pick HTTP statuses.
func WithMapper(m apis.Mapper) Option {
	return func(w *Writer) {
		if m != nil {
			w.mapper = m
		}
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithModule sets the module assigned to plain Go errors passed to
// WriteError.
func WithModule(m string) Option {
	return func(w *Writer) { w.module = m }
}

// Writer turns errors into HTTP responses. It is safe for concurrent use.
type Writer struct {
	mapper apis.Mapper
	logger *slog.Logger
	module string
}

// NewWriter returns a Writer using mapper.Default() and slog.Default()
// unless overridden.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{mapper: mapper.Default(), logger: slog.Default()}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Write sends e as a JSON error body. The correlation id is taken from the
// request header or generated. r may be nil.
func (w *Writer) Write(rw http.ResponseWriter, r *http.Request, e common.ErrorInfo) {
	ctx := context.Background()
	corr := ""
	if r != nil {
		ctx = r.Context()
		corr = r.Header.Get(HeaderCorrelationID)
	}
	if corr == "" {
		corr = uuid.NewString()
	}

	status := w.mapper.HTTPStatus(e.Code(), module.Module(e.Module()))

	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	w.logger.LogAttrs(ctx, level, "http request failed",
		slog.Int("status", status),
		slog.String("correlation_id", corr),
		slog.Any("error", e),
	)

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set(HeaderCorrelationID, corr)
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(Body{ErrorView: e.ErrorView(), CorrelationID: corr})
}

// WriteError converts err with common.FromError and writes it.
func (w *Writer) WriteError(rw http.ResponseWriter, r *http.Request, err error) {
	w.Write(rw, r, common.FromError(err, w.module))
}
