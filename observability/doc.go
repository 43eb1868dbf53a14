// Package observability provides OpenTelemetry tracing and metrics for the SDK.
//
// The SDK only uses the global providers; installing exporters is left to the
// application embedding it.
//
// Tracing:
//
//	ctx, op := observability.StartOperation(ctx, "paysdk.withdraw", requestID, metrics)
//	defer op.End(ctx, failed)
//
// Metrics:
//
//	metrics, err := observability.NewMetrics(observability.Meter("paysdk"))
//	metrics.RecordError(ctx, "transport", "UNCLASSIFIED")
package observability
