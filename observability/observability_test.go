package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter, tp
}

func attrValue(attrs []attribute.KeyValue, key string) string {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.Emit()
		}
	}
	return ""
}

func TestSpanFromContext(t *testing.T) {
	span := SpanFromContext(context.Background())
	if span == nil {
		t.Fatal("expected non-nil span (noop)")
	}
}

func TestSetSpanErrorNoSpan(t *testing.T) {
	// Should not panic with background context
	SetSpanError(context.Background(), fmt.Errorf("no span error"))
	RecordSDKError(context.Background(), "transport", "UNCLASSIFIED", "unclassified SDK error")
}

func TestRecordSDKError(t *testing.T) {
	exporter, tp := newRecordingTracer(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "paysdk.withdraw")
	RecordSDKError(ctx, "transport", "UNCLASSIFIED", "unclassified SDK error")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", s.Status.Code)
	}
	if s.Status.Description != "unclassified SDK error" {
		t.Errorf("expected public description, got %q", s.Status.Description)
	}
	if len(s.Events) != 1 || s.Events[0].Name != EventSDKError {
		t.Fatalf("expected one %s event, got %+v", EventSDKError, s.Events)
	}
	if got := attrValue(s.Events[0].Attributes, AttrErrorKind); got != "transport" {
		t.Errorf("expected kind transport, got %q", got)
	}
	if got := attrValue(s.Events[0].Attributes, AttrErrorCode); got != "UNCLASSIFIED" {
		t.Errorf("expected code UNCLASSIFIED, got %q", got)
	}
}

func TestSetSpanError(t *testing.T) {
	exporter, tp := newRecordingTracer(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "test-error")
	SetSpanError(ctx, fmt.Errorf("test error"))
	span.End()

	s := exporter.GetSpans()[0]
	if s.Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", s.Status.Code)
	}
}

func TestStartOperation(t *testing.T) {
	exporter, tp := newRecordingTracer(t)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, op := StartOperation(context.Background(), "paysdk.fetch_pay_request", "req-1", metrics)
	if op.Name != "paysdk.fetch_pay_request" || op.RequestID != "req-1" {
		t.Errorf("unexpected operation %+v", op)
	}
	op.End(ctx, true)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := attrValue(spans[0].Attributes, AttrStatus); got != "error" {
		t.Errorf("expected status error, got %q", got)
	}
	if got := attrValue(spans[0].Attributes, AttrRequestID); got != "req-1" {
		t.Errorf("expected request id req-1, got %q", got)
	}
}

func TestOperationWithoutMetrics(t *testing.T) {
	ctx, op := StartOperation(context.Background(), "op", "", nil)
	// Should not panic
	op.End(ctx, false)
}

func TestMetricsRecordError(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	metrics, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	metrics.RecordError(ctx, "transport", "UNCLASSIFIED")
	metrics.RecordError(ctx, "transport", "UNCLASSIFIED")
	metrics.RecordError(ctx, "invoice", "INVOICE_ERROR")
	metrics.RecordOperation(ctx, "withdraw", "ok", 20*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "sdk.errors.translated" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("expected Sum[int64], got %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				kind, _ := dp.Attributes.Value("kind")
				counts[kind.AsString()] += dp.Value
			}
		}
	}
	if counts["transport"] != 2 {
		t.Errorf("expected 2 transport errors, got %d", counts["transport"])
	}
	if counts["invoice"] != 1 {
		t.Errorf("expected 1 invoice error, got %d", counts["invoice"])
	}
}
