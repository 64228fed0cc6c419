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

package otelx

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/result"
)

// Attribute keys set on spans and metric data points.
const (
	KeyCode     = attribute.Key("error.code")
	KeySymbol   = attribute.Key("error.symbol")
	KeyCategory = attribute.Key("error.category")
	KeyModule   = attribute.Key("error.module")
	KeyDetails  = attribute.Key("error.details")
)

// Attributes returns the span attributes describing e. Module and details
// are omitted when empty or absent.
func Attributes(e common.ErrorInfo) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		KeyCode.Int(int(e.Code())),
		KeyCategory.String(e.Category().String()),
	}
	if sym := code.Name(e.Code()); sym != "" {
		attrs = append(attrs, KeySymbol.String(sym))
	}
	if e.Module() != "" {
		attrs = append(attrs, KeyModule.String(e.Module()))
	}
	if d, ok := e.Details(); ok {
		attrs = append(attrs, KeyDetails.String(d))
	}
	return attrs
}

// RecordError adds an exception event for e to span, copies its attributes
// onto the span and sets the span status to Error. The success code is
// ignored.
func RecordError(span trace.Span, e common.ErrorInfo) {
	if span == nil || e.Code().IsSuccess() {
		return
	}
	attrs := Attributes(e)
	span.RecordError(e, trace.WithAttributes(attrs...))
	span.SetAttributes(attrs...)
	span.SetStatus(codes.Error, e.Message())
}

// RecordResult calls RecordError when r holds an error and reports whether
// it did.
func RecordResult[T any](span trace.Span, r result.Result[T]) bool {
	e, ok := result.GetIfErr(r)
	if !ok {
		return false
	}
	RecordError(span, e)
	return true
}
