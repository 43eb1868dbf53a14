package sdkerr

import (
	"fmt"
	"strings"
	"time"
)

// Kind names an internal error variant for logs and metrics.
type Kind string

const (
	KindInvoice                   Kind = "invoice"
	KindPayRequestValidation      Kind = "pay_request_validation"
	KindPayRequestIVDecode        Kind = "pay_request_iv_decode"
	KindWithdrawRequestValidation Kind = "withdraw_request_validation"
	KindWithdrawCallbackParsing   Kind = "withdraw_callback_parsing"
	KindTransport                 Kind = "transport"
	KindDurationComputation       Kind = "duration_computation"
)

// AllKinds returns every variant kind in declaration order.
func AllKinds() []Kind {
	return []Kind{
		KindInvoice,
		KindPayRequestValidation,
		KindPayRequestIVDecode,
		KindWithdrawRequestValidation,
		KindWithdrawCallbackParsing,
		KindTransport,
		KindDurationComputation,
	}
}

// Error is the closed set of failures raised inside the SDK.
// Only types declared in this package satisfy it.
type Error interface {
	error
	// Kind reports which variant this is.
	Kind() Kind
	// Accept dispatches to the Visitor method matching the variant.
	Accept(v Visitor)

	sealed()
}

// Visitor has one method per variant. Adding a variant adds a method here,
// which breaks every visitor that does not handle it.
type Visitor interface {
	Invoice(InvoiceError)
	PayRequestValidation(PayRequestValidationError)
	PayRequestIVDecode(PayRequestIVDecodeError)
	WithdrawRequestValidation(WithdrawRequestValidationError)
	WithdrawCallbackParsing(WithdrawCallbackParsingError)
	Transport(TransportError)
	DurationComputation(DurationComputationError)
}

// InvoiceError reports an invoice that failed to parse or failed semantic validation.
type InvoiceError struct {
	Message string
}

func Invoice(msg string) InvoiceError { return InvoiceError{Message: strings.Clone(msg)} }

func (e InvoiceError) Error() string    { return "invoice: " + e.Message }
func (e InvoiceError) Kind() Kind       { return KindInvoice }
func (e InvoiceError) Accept(v Visitor) { v.Invoice(e) }
func (InvoiceError) sealed()            {}

// PayRequestValidationError reports a pay request that failed validation.
type PayRequestValidationError struct {
	Message string
}

func PayRequestValidation(msg string) PayRequestValidationError {
	return PayRequestValidationError{Message: strings.Clone(msg)}
}

func (e PayRequestValidationError) Error() string    { return "pay request validation: " + e.Message }
func (e PayRequestValidationError) Kind() Kind       { return KindPayRequestValidation }
func (e PayRequestValidationError) Accept(v Visitor) { v.PayRequestValidation(e) }
func (PayRequestValidationError) sealed()            {}

// PayRequestIVDecodeError reports a pay request whose IV field could not be decoded.
type PayRequestIVDecodeError struct {
	Message string
}

func PayRequestIVDecode(msg string) PayRequestIVDecodeError {
	return PayRequestIVDecodeError{Message: strings.Clone(msg)}
}

func (e PayRequestIVDecodeError) Error() string    { return "pay request iv decode: " + e.Message }
func (e PayRequestIVDecodeError) Kind() Kind       { return KindPayRequestIVDecode }
func (e PayRequestIVDecodeError) Accept(v Visitor) { v.PayRequestIVDecode(e) }
func (PayRequestIVDecodeError) sealed()            {}

// WithdrawRequestValidationError reports a withdraw request that failed validation.
type WithdrawRequestValidationError struct {
	Message string
}

func WithdrawRequestValidation(msg string) WithdrawRequestValidationError {
	return WithdrawRequestValidationError{Message: strings.Clone(msg)}
}

func (e WithdrawRequestValidationError) Error() string {
	return "withdraw request validation: " + e.Message
}
func (e WithdrawRequestValidationError) Kind() Kind       { return KindWithdrawRequestValidation }
func (e WithdrawRequestValidationError) Accept(v Visitor) { v.WithdrawRequestValidation(e) }
func (WithdrawRequestValidationError) sealed()            {}

// WithdrawCallbackParsingError reports a withdraw callback response that could not be parsed.
type WithdrawCallbackParsingError struct {
	Message string
}

func WithdrawCallbackParsing(msg string) WithdrawCallbackParsingError {
	return WithdrawCallbackParsingError{Message: strings.Clone(msg)}
}

func (e WithdrawCallbackParsingError) Error() string {
	return "withdraw callback parsing: " + e.Message
}
func (e WithdrawCallbackParsingError) Kind() Kind       { return KindWithdrawCallbackParsing }
func (e WithdrawCallbackParsingError) Accept(v Visitor) { v.WithdrawCallbackParsing(e) }
func (WithdrawCallbackParsingError) sealed()            {}

// TransportError reports a failed network exchange.
type TransportError struct {
	// StatusCode is the HTTP status of a completed exchange, 0 when no response was received.
	StatusCode int
	Message    string
}

func Transport(statusCode int, msg string) TransportError {
	if statusCode < 0 {
		statusCode = 0
	}
	return TransportError{StatusCode: statusCode, Message: strings.Clone(msg)}
}

// HasStatus reports whether the failure carries an HTTP status code.
func (e TransportError) HasStatus() bool { return e.StatusCode > 0 }

func (e TransportError) Error() string {
	if e.HasStatus() {
		return fmt.Sprintf("transport (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "transport: " + e.Message
}
func (e TransportError) Kind() Kind       { return KindTransport }
func (e TransportError) Accept(v Visitor) { v.Transport(e) }
func (TransportError) sealed()            {}

// DurationComputationError reports an attempt to compute to-from where from is after to.
type DurationComputationError struct {
	// NegativeGap is the magnitude of the invalid gap.
	NegativeGap time.Duration
}

func DurationComputation(gap time.Duration) DurationComputationError {
	if gap < 0 {
		gap = -gap
	}
	return DurationComputationError{NegativeGap: gap}
}

func (e DurationComputationError) Error() string {
	return fmt.Sprintf("duration computation: start is %s after end", e.NegativeGap)
}
func (e DurationComputationError) Kind() Kind       { return KindDurationComputation }
func (e DurationComputationError) Accept(v Visitor) { v.DurationComputation(e) }
func (DurationComputationError) sealed()            {}
