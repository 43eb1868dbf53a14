package errors

import (
	"context"

	"github.com/kbukum/paysdk/internal/sdkerr"
	"github.com/kbukum/paysdk/logger"
	"github.com/kbukum/paysdk/observability"
)

// Boundary is where internal failures leave the SDK. It records the internal
// detail for diagnostics, then hands back the translated public error.
type Boundary struct {
	log     *logger.Logger
	metrics *observability.Metrics
}

// NewBoundary creates a Boundary. A nil log discards records; nil metrics
// disables counting.
func NewBoundary(log *logger.Logger, metrics *observability.Metrics) *Boundary {
	if log == nil {
		log = logger.Nop()
	}
	return &Boundary{log: log.WithComponent("boundary"), metrics: metrics}
}

// Translate records err and returns Translate(err).
func (b *Boundary) Translate(ctx context.Context, err sdkerr.Error) Error {
	if err == nil {
		return nil
	}
	public := Translate(err)

	fields := logger.Fields(
		logger.FieldErrorKind, string(err.Kind()),
		logger.FieldErrorCode, string(public.Code()),
		logger.FieldError, err.Error(),
	)
	if te, ok := err.(sdkerr.TransportError); ok {
		if te.HasStatus() {
			fields[logger.FieldStatus] = te.StatusCode
		}
		b.log.WithContext(ctx).Warn("transport failure at SDK boundary", fields)
	} else {
		b.log.WithContext(ctx).Debug("internal error at SDK boundary", fields)
	}

	observability.RecordSDKError(ctx, string(err.Kind()), string(public.Code()), public.Error())
	if b.metrics != nil {
		b.metrics.RecordError(ctx, string(err.Kind()), string(public.Code()))
	}
	return public
}

// Return passes v through when err is nil; otherwise it returns the zero value
// and err translated through b.
//
//	func (c *Client) DecodeInvoice(ctx context.Context, s string) (Invoice, errors.Error) {
//	    inv, err := c.decodeInvoice(s)
//	    return errors.Return(ctx, c.boundary, inv, err)
//	}
func Return[T any](ctx context.Context, b *Boundary, v T, err sdkerr.Error) (T, Error) {
	if err != nil {
		var zero T
		return zero, b.Translate(ctx, err)
	}
	return v, nil
}
