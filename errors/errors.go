package errors

import (
	stderrors "errors"
)

// Error is a public SDK error. The only implementations are InvoiceError and
// UnclassifiedError.
type Error interface {
	error
	// Code is the machine-readable code of the error.
	Code() ErrorCode

	public()
}

// InvoiceError reports an invoice that failed to parse or failed validation.
//
//	var invErr errors.InvoiceError
//	if stderrors.As(err, &invErr) {
//	    fmt.Println(invErr.Message())
//	}
type InvoiceError struct {
	message string
}

// Message returns the diagnostic message of the invoice failure.
func (e InvoiceError) Message() string { return e.message }

func (e InvoiceError) Error() string   { return "invoice error: " + e.message }
func (e InvoiceError) Code() ErrorCode { return ErrCodeInvoice }
func (InvoiceError) public()           {}

// UnclassifiedError is returned for every failure without a dedicated public kind.
// It carries no detail and its text is not stable across releases.
type UnclassifiedError struct{}

func (UnclassifiedError) Error() string   { return "unclassified SDK error" }
func (UnclassifiedError) Code() ErrorCode { return ErrCodeUnclassified }
func (UnclassifiedError) public()         {}

// IsInvoice reports whether err is, or wraps, an InvoiceError.
func IsInvoice(err error) bool {
	var e InvoiceError
	return stderrors.As(err, &e)
}

// IsUnclassified reports whether err is, or wraps, an UnclassifiedError.
func IsUnclassified(err error) bool {
	var e UnclassifiedError
	return stderrors.As(err, &e)
}

// AsError returns the public SDK error wrapped in err, if any.
func AsError(err error) (Error, bool) {
	var e Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the public SDK error in err. Errors that are not
// SDK errors report ErrCodeUnclassified; nil reports the empty code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if e, ok := AsError(err); ok {
		return e.Code()
	}
	return ErrCodeUnclassified
}
