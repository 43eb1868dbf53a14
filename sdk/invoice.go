package sdk

import "time"

// Invoice is a decoded BOLT11 invoice.
type Invoice struct {
	Bolt11      string
	PaymentHash string
	// AmountMsat is 0 when the invoice accepts any amount.
	AmountMsat  int64
	Description string
	// DescriptionHash is the hex committed description hash, if any.
	DescriptionHash string
	Timestamp       time.Time
	Expiry          time.Duration
}

// ExpiresAt returns when the invoice stops being payable.
func (i Invoice) ExpiresAt() time.Time {
	return i.Timestamp.Add(i.Expiry)
}

// InvoiceDecoder decodes BOLT11 strings. Parse handles syntax and signature
// checks; CheckSemantics rejects invoices that decoded but are unusable.
// Errors returned may implement SDKError() to pick their own classification.
type InvoiceDecoder interface {
	Parse(bolt11 string) (Invoice, error)
	CheckSemantics(inv Invoice) error
}
