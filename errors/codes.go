package errors

// ErrorCode is the machine-readable code of a public SDK error.
type ErrorCode string

const (
	// ErrCodeInvoice marks an invoice that failed to parse or validate.
	ErrCodeInvoice ErrorCode = "INVOICE_ERROR"
	// ErrCodeUnclassified marks every failure without a dedicated public code.
	// New codes may be split out of it in later SDK versions.
	ErrCodeUnclassified ErrorCode = "UNCLASSIFIED"
)

// Codes returns every public error code.
func Codes() []ErrorCode {
	return []ErrorCode{ErrCodeInvoice, ErrCodeUnclassified}
}
