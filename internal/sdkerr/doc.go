// Package sdkerr defines the failures raised inside the SDK.
//
// Every internal operation that can fail returns an Error. The set of variants is
// closed: InvoiceError, PayRequestValidationError, PayRequestIVDecodeError,
// WithdrawRequestValidationError, WithdrawCallbackParsingError, TransportError and
// DurationComputationError. Variants are plain values and are never mutated.
//
// Foreign failures enter the taxonomy through the From* adapters:
//
//	inv, err := decoder.Parse(bolt11)
//	if err != nil {
//	    return sdkerr.FromInvoiceParseFailure(err)
//	}
//
// Adapt and Convert pick an adapter from the failure's type when the call site
// cannot know it.
//
// Errors leave the SDK only through the public errors package, which translates
// them with a Visitor.
package sdkerr
