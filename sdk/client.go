package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/paysdk/errors"
	"github.com/kbukum/paysdk/internal/sdkerr"
	"github.com/kbukum/paysdk/internal/transport"
	"github.com/kbukum/paysdk/logger"
	"github.com/kbukum/paysdk/observability"
	"github.com/kbukum/paysdk/version"
)

// Client runs LNURL flows against remote services.
type Client struct {
	transport *transport.Client
	decoder   InvoiceDecoder
	boundary  *errors.Boundary
	log       *logger.Logger
	metrics   *observability.Metrics
	now       func() time.Time
}

type options struct {
	log        *logger.Logger
	meter      metric.Meter
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Client.
type Option func(*options)

// WithLogger replaces the logger built from Config.Service.Logging.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMeter records operation and error metrics on meter instead of the
// global MeterProvider.
func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithClock replaces time.Now for invoice expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a Client. Configuration problems are reported as plain errors;
// only the operations of a built Client return errors.Error.
func New(cfg Config, decoder InvoiceDecoder, opts ...Option) (*Client, error) {
	if decoder == nil {
		return nil, fmt.Errorf("sdk: invoice decoder is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sdk: invalid config: %w", err)
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.New(&cfg.Service.Logging, cfg.Service.Name)
	}

	if o.meter == nil {
		o.meter = observability.Meter(version.ModulePath)
	}
	metrics, err := observability.NewMetrics(o.meter)
	if err != nil {
		return nil, fmt.Errorf("sdk: %w", err)
	}

	topts := []transport.Option{transport.WithLogger(o.log)}
	if o.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(o.httpClient))
	}
	tc, err := transport.New(cfg.Transport, topts...)
	if err != nil {
		return nil, fmt.Errorf("sdk: %w", err)
	}

	return &Client{
		transport: tc,
		decoder:   decoder,
		boundary:  errors.NewBoundary(o.log, metrics),
		log:       o.log.WithComponent("sdk"),
		metrics:   metrics,
		now:       o.now,
	}, nil
}

// begin tags ctx with a fresh request id and starts the operation span.
func (c *Client) begin(ctx context.Context, name string) (context.Context, *observability.Operation) {
	id := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, id)
	c.log.WithContext(ctx).Debug("operation started", logger.Fields(logger.FieldOperation, name))
	return observability.StartOperation(ctx, name, id, c.metrics)
}

// finish translates err while the operation span is still open, so the
// boundary's error event lands on it, then ends the operation.
func finish[T any](ctx context.Context, c *Client, op *observability.Operation, v T, err sdkerr.Error) (T, errors.Error) {
	out, public := errors.Return(ctx, c.boundary, v, err)
	op.End(ctx, public != nil)
	return out, public
}
