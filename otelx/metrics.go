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
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	common "github.com/kcenon/common-system"
)

// ErrorCountName is the name of the counter created by NewErrorCounter.
const ErrorCountName = "common.errors"

// ErrorCounter counts errors by code, category and module.
type ErrorCounter struct {
	counter metric.Int64Counter
}

// NewErrorCounter creates the counter on meter.
func NewErrorCounter(meter metric.Meter) (*ErrorCounter, error) {
	c, err := meter.Int64Counter(ErrorCountName,
		metric.WithDescription("Errors reported through common.ErrorInfo"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("otelx: create counter: %w", err)
	}
	return &ErrorCounter{counter: c}, nil
}

// Add counts e once. Details are left out to keep cardinality bounded.
func (c *ErrorCounter) Add(ctx context.Context, e common.ErrorInfo) {
	if e.Code().IsSuccess() {
		return
	}
	attrs := []attribute.KeyValue{
		KeyCode.Int(int(e.Code())),
		KeyCategory.String(e.Category().String()),
	}
	if e.Module() != "" {
		attrs = append(attrs, KeyModule.String(e.Module()))
	}
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}
