package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/paysdk/logger"
	"github.com/kbukum/paysdk/observability"
	"github.com/kbukum/paysdk/version"
)

// Client is an HTTP client that reports failures as *Error.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.WithComponent("transport") }
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is kept as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do executes an HTTP request and returns the complete response. A non-2xx
// status returns both the response and a classified *Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest)
	defer span.End()

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	span.SetAttributes(attribute.String(observability.AttrHTTPMethod, httpReq.Method))

	log := c.log.WithContext(ctx)
	log.Debug("sending request", logger.Fields(logger.FieldURL, redact(httpReq.URL)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redact(httpReq.URL)
		}
		var tErr *Error
		if ctx.Err() != nil || isTimeout(err) {
			tErr = NewTimeoutError(err)
		} else {
			tErr = NewConnectionError(err)
		}
		observability.SetSpanError(ctx, tErr)
		return nil, tErr
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodyBytes+1))
	if err != nil {
		tErr := NewConnectionError(fmt.Errorf("read response body: %w", err))
		observability.SetSpanError(ctx, tErr)
		return nil, tErr
	}
	if int64(len(body)) > c.config.MaxBodyBytes {
		tErr := NewBodyTooLargeError(c.config.MaxBodyBytes)
		observability.SetSpanError(ctx, tErr)
		return nil, tErr
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	log.Debug("received response", logger.Fields(logger.FieldStatus, resp.StatusCode))

	if result.IsSuccess() {
		return result, nil
	}
	classErr := ClassifyStatusCode(resp.StatusCode, body)
	observability.SetSpanError(ctx, classErr)
	return result, classErr
}

// Get performs a GET request with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, query map[string]string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, NewRequestError(fmt.Sprintf("create request: %v", err), err)
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", version.UserAgent())
	}

	return httpReq, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// redact drops query values, which carry k1 secrets and invoices.
func redact(u *url.URL) string {
	cp := *u
	cp.RawQuery = ""
	cp.User = nil
	return cp.String()
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
