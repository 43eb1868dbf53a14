package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Operation tracks one public SDK call.
type Operation struct {
	Name      string
	RequestID string
	StartTime time.Time
	Metrics   *Metrics

	span trace.Span
}

// StartOperation starts a span named after the operation.
// If metrics is nil, metric recording is silently skipped.
func StartOperation(ctx context.Context, name, requestID string, metrics *Metrics) (context.Context, *Operation) {
	ctx, span := StartSpan(ctx, name)
	span.SetAttributes(
		attribute.String(AttrOperationName, name),
		attribute.String(AttrRequestID, requestID),
	)
	return ctx, &Operation{
		Name:      name,
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
		span:      span,
	}
}

// End closes the span and records the operation metric. failed only picks the
// status label; error details are recorded at the error boundary.
func (op *Operation) End(ctx context.Context, failed bool) {
	duration := time.Since(op.StartTime)
	status := "ok"
	if failed {
		status = "error"
	}

	op.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	op.span.End()

	if op.Metrics != nil {
		op.Metrics.RecordOperation(ctx, op.Name, status, duration)
	}
}
