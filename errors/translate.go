package errors

import (
	"github.com/kbukum/paysdk/internal/sdkerr"
)

// Translate maps an internal failure to the public error returned to callers.
// Invoice failures keep their message; everything else collapses to
// UnclassifiedError. Translate is pure and returns nil for nil.
func Translate(err sdkerr.Error) Error {
	if err == nil {
		return nil
	}
	var t translator
	err.Accept(&t)
	return t.out
}

// translator must implement every sdkerr.Visitor method; a new internal
// variant fails to compile here until it is given a public mapping.
type translator struct {
	out Error
}

var _ sdkerr.Visitor = (*translator)(nil)

func (t *translator) Invoice(e sdkerr.InvoiceError) {
	t.out = InvoiceError{message: e.Message}
}

func (t *translator) PayRequestValidation(sdkerr.PayRequestValidationError) {
	t.out = UnclassifiedError{}
}

func (t *translator) PayRequestIVDecode(sdkerr.PayRequestIVDecodeError) {
	t.out = UnclassifiedError{}
}

func (t *translator) WithdrawRequestValidation(sdkerr.WithdrawRequestValidationError) {
	t.out = UnclassifiedError{}
}

func (t *translator) WithdrawCallbackParsing(sdkerr.WithdrawCallbackParsingError) {
	t.out = UnclassifiedError{}
}

func (t *translator) Transport(sdkerr.TransportError) {
	t.out = UnclassifiedError{}
}

func (t *translator) DurationComputation(sdkerr.DurationComputationError) {
	t.out = UnclassifiedError{}
}
