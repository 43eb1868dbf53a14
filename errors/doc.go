// Package errors defines the errors returned by the SDK's public API.
// Internal failures are translated into this small, stable set before they
// reach callers.
//
// Callers can depend on two kinds:
//
//   - InvoiceError: an invoice could not be parsed or validated; Message()
//     describes why and is stable.
//   - UnclassifiedError: any other failure. Do not match on its text.
//
// Match with the standard library or the helpers here:
//
//	_, err := client.DecodeInvoice(ctx, bolt11)
//	switch errors.CodeOf(err) {
//	case errors.ErrCodeInvoice:
//	    ...
//	case errors.ErrCodeUnclassified:
//	    ...
//	}
package errors
