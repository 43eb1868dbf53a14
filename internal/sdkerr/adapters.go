package sdkerr

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StatusCarrier is implemented by transport failures that completed an HTTP exchange.
type StatusCarrier interface {
	HTTPStatus() int
}

// FromInvoiceParseFailure adapts an invoice decoder parse failure.
func FromInvoiceParseFailure(err error) Error {
	return Invoice(err.Error())
}

// FromInvoiceSemanticFailure adapts an invoice that decoded but failed semantic checks.
func FromInvoiceSemanticFailure(err error) Error {
	return Invoice(err.Error())
}

// FromTransportFailure adapts a network failure. The status code is kept only when
// some error in the chain reports a completed exchange with a non-success status.
func FromTransportFailure(err error) Error {
	return Transport(statusOf(err), err.Error())
}

// FromPayRequestValidationFailure adapts a validator failure on a pay request.
func FromPayRequestValidationFailure(err error) Error {
	return PayRequestValidation(validationMessage(err))
}

// FromWithdrawRequestValidationFailure adapts a validator failure on a withdraw request.
func FromWithdrawRequestValidationFailure(err error) Error {
	return WithdrawRequestValidation(validationMessage(err))
}

// FromIVDecodeFailure adapts a decoding failure of a pay request IV.
func FromIVDecodeFailure(err error) Error {
	return PayRequestIVDecode(err.Error())
}

// FromWithdrawCallbackParseFailure adapts a decoding or validator failure of a
// withdraw callback body.
func FromWithdrawCallbackParseFailure(err error) Error {
	return WithdrawCallbackParsing(validationMessage(err))
}

// FromDurationFailure has no mapping yet. Durations are checked with Between instead.
func FromDurationFailure(err error) Error {
	panic(NotImplementedFault{Adapter: "duration", Cause: err})
}

// FromURLParseFailure has no mapping yet.
func FromURLParseFailure(err error) Error {
	panic(NotImplementedFault{Adapter: "url parse", Cause: err})
}

func statusOf(err error) int {
	var sc StatusCarrier
	if !stderrors.As(err, &sc) {
		return 0
	}
	status := sc.HTTPStatus()
	if status < http.StatusContinue || (status >= http.StatusOK && status < http.StatusMultipleChoices) {
		return 0
	}
	return status
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fe.Field()+": "+formatFieldError(fe))
	}
	return strings.Join(messages, "; ")
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "url", "http_url":
		return "must be a valid URL"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "gtefield":
		return "must not be less than " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "eq":
		return "must be " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
