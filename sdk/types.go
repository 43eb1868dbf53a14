package sdk

import "github.com/kbukum/paysdk/internal/lnurl"

type (
	// PayRequest is an LNURL-pay service description.
	PayRequest = lnurl.PayRequest
	// SuccessAction is shown to the payer after settlement.
	SuccessAction = lnurl.SuccessAction
	// WithdrawRequest is an LNURL-withdraw service description.
	WithdrawRequest = lnurl.WithdrawRequest
	// CallbackResponse is the withdraw service's verdict.
	CallbackResponse = lnurl.CallbackResponse
)

// PayInvoice is the invoice a pay service issued for a requested amount.
type PayInvoice struct {
	Invoice       Invoice
	SuccessAction *SuccessAction
}
