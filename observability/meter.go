package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the SDK's metric instruments.
type Metrics struct {
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	operationTotal, err := meter.Int64Counter("sdk.operation.total",
		metric.WithDescription("Total number of public SDK operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sdk.operation.total counter: %w", err)
	}

	operationDuration, err := meter.Float64Histogram("sdk.operation.duration",
		metric.WithDescription("Duration of public SDK operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sdk.operation.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("sdk.errors.translated",
		metric.WithDescription("Internal errors translated at the public boundary, by kind and public code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sdk.errors.translated counter: %w", err)
	}

	return &Metrics{
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
		errorTotal:        errorTotal,
	}, nil
}

// RecordOperation records a completed public operation.
func (m *Metrics) RecordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	m.operationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordError records one translated error by internal kind and public code.
func (m *Metrics) RecordError(ctx context.Context, kind, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("code", code),
	))
}
