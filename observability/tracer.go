package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "github.com/kbukum/paysdk"

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// StartSpan starts a new span using the default tracer.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer(defaultTracerName).Start(ctx, name, opts...)
}

// SpanFromContext returns the span from context.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// SetSpanError records an error on the current span in context.
func SetSpanError(ctx context.Context, err error) {
	span := SpanFromContext(ctx)
	if span != nil && span.IsRecording() {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// RecordSDKError adds an EventSDKError event to the current span and marks it
// failed with the public description only.
func RecordSDKError(ctx context.Context, kind, code, publicMessage string) {
	span := SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(EventSDKError, trace.WithAttributes(
		attribute.String(AttrErrorKind, kind),
		attribute.String(AttrErrorCode, code),
	))
	span.SetStatus(codes.Error, publicMessage)
}

// Span and event names.
const (
	SpanHTTPRequest = "http.request"
	EventSDKError   = "sdk.error"
)

// Common attribute keys.
const (
	AttrOperationName = "operation.name"
	AttrRequestID     = "request.id"
	AttrDurationMs    = "duration_ms"
	AttrStatus        = "status"
	AttrErrorKind     = "sdk.error.kind"
	AttrErrorCode     = "sdk.error.code"
	AttrHTTPStatus    = "http.status_code"
	AttrHTTPMethod    = "http.method"
)
