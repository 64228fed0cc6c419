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

package otelx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/otelx"
	"github.com/kcenon/common-system/result"
)

func newTracer() (*tracetest.InMemoryExporter, *trace.TracerProvider) {
	exporter := tracetest.NewInMemoryExporter()
	return exporter, trace.NewTracerProvider(trace.WithSyncer(exporter))
}

func attrValue(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func Test_RecordError(t *testing.T) {
	exporter, provider := newTracer()
	_, span := provider.Tracer("test").Start(context.Background(), "query")

	otelx.RecordError(span, common.New(code.DatabaseQueryFailed, "syntax near SELECT",
		common.WithModule("database.query"),
		common.WithDetails("line 3")))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	got := spans[0]

	assert.Equal(t, codes.Error, got.Status.Code)
	assert.Equal(t, "syntax near SELECT", got.Status.Description)

	v, ok := attrValue(got.Attributes, otelx.KeyCode)
	require.True(t, ok)
	assert.Equal(t, int64(code.DatabaseQueryFailed), v.AsInt64())

	v, _ = attrValue(got.Attributes, otelx.KeyCategory)
	assert.Equal(t, "database_system", v.AsString())
	v, _ = attrValue(got.Attributes, otelx.KeyModule)
	assert.Equal(t, "database.query", v.AsString())
	v, _ = attrValue(got.Attributes, otelx.KeyDetails)
	assert.Equal(t, "line 3", v.AsString())
	v, _ = attrValue(got.Attributes, otelx.KeySymbol)
	assert.Equal(t, "DATABASE_QUERY_FAILED", v.AsString())

	require.Len(t, got.Events, 1)
	assert.Equal(t, "exception", got.Events[0].Name)
}

func Test_RecordError_IgnoresSuccess(t *testing.T) {
	exporter, provider := newTracer()
	_, span := provider.Tracer("test").Start(context.Background(), "noop")

	otelx.RecordError(span, common.ErrorInfo{})
	otelx.RecordError(nil, common.New(code.InternalError, "no span"))
	span.End()

	got := exporter.GetSpans()[0]
	assert.Equal(t, codes.Unset, got.Status.Code)
	assert.Empty(t, got.Attributes)
}

func Test_Attributes_OmitsEmpty(t *testing.T) {
	attrs := otelx.Attributes(common.New(-1500, "future"))

	_, ok := attrValue(attrs, otelx.KeyModule)
	assert.False(t, ok)
	_, ok = attrValue(attrs, otelx.KeyDetails)
	assert.False(t, ok)
	_, ok = attrValue(attrs, otelx.KeySymbol)
	assert.False(t, ok)

	v, _ := attrValue(attrs, otelx.KeyCategory)
	assert.Equal(t, "reserved", v.AsString())
}

func Test_RecordResult(t *testing.T) {
	exporter, provider := newTracer()
	tracer := provider.Tracer("test")

	_, okSpan := tracer.Start(context.Background(), "ok")
	assert.False(t, otelx.RecordResult(okSpan, result.Ok(1)))
	okSpan.End()

	_, errSpan := tracer.Start(context.Background(), "err")
	assert.True(t, otelx.RecordResult(errSpan, result.ErrCode[int](code.Timeout, "slow")))
	errSpan.End()

	_, uninitSpan := tracer.Start(context.Background(), "uninit")
	assert.True(t, otelx.RecordResult(uninitSpan, result.Uninitialized[string]()))
	uninitSpan.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 3)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, codes.Error, spans[2].Status.Code)

	v, _ := attrValue(spans[2].Attributes, otelx.KeyModule)
	assert.Equal(t, "common.result", v.AsString())
}

func Test_ErrorCounter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	counter, err := otelx.NewErrorCounter(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	e := common.New(code.NotFound, "gone", common.WithModule("database.users"), common.WithDetails("id=1"))
	counter.Add(ctx, e)
	counter.Add(ctx, e)
	counter.Add(ctx, common.ErrorInfo{})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, otelx.ErrorCountName, m.Name)

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)

	dp := sum.DataPoints[0]
	assert.Equal(t, int64(2), dp.Value)
	want := attribute.NewSet(
		otelx.KeyCode.Int(int(code.NotFound)),
		otelx.KeyCategory.String("common"),
		otelx.KeyModule.String("database.users"),
	)
	assert.True(t, dp.Attributes.Equals(&want))
}
