package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/paysdk/errors"
	"github.com/kbukum/paysdk/internal/lnurl"
	"github.com/kbukum/paysdk/internal/sdkerr"
	"github.com/kbukum/paysdk/logger"
)

// FetchWithdrawRequest retrieves the withdraw request at endpoint.
func (c *Client) FetchWithdrawRequest(ctx context.Context, endpoint string) (*WithdrawRequest, errors.Error) {
	ctx, op := c.begin(ctx, "fetch_withdraw_request")
	req, err := c.fetchWithdrawRequest(ctx, endpoint)
	return finish(ctx, c, op, req, err)
}

// Withdraw submits bolt11 to the withdraw service. A refusal by the service is
// a CallbackResponse with Status ERROR, not an error.
func (c *Client) Withdraw(ctx context.Context, req *WithdrawRequest, bolt11 string) (*CallbackResponse, errors.Error) {
	ctx, op := c.begin(ctx, "withdraw")
	resp, err := c.withdraw(ctx, req, bolt11)
	return finish(ctx, c, op, resp, err)
}

// DecodeInvoice decodes and checks bolt11, including expiry.
func (c *Client) DecodeInvoice(ctx context.Context, bolt11 string) (Invoice, errors.Error) {
	ctx, op := c.begin(ctx, "decode_invoice")
	inv, err := c.decodeInvoice(bolt11)
	if err == nil {
		err = c.checkExpiry(inv)
	}
	return finish(ctx, c, op, inv, err)
}

func (c *Client) fetchWithdrawRequest(ctx context.Context, endpoint string) (*WithdrawRequest, sdkerr.Error) {
	target, ok := serviceURL(endpoint)
	if !ok {
		return nil, sdkerr.WithdrawRequestValidation(fmt.Sprintf("invalid withdraw endpoint %q", endpoint))
	}
	resp, err := c.transport.Get(ctx, target, nil)
	if err != nil {
		if resp != nil {
			if reason, failed := lnurl.ServiceError(resp.Body); failed {
				return nil, sdkerr.WithdrawRequestValidation(reason)
			}
		}
		return nil, sdkerr.Adapt(err, sdkerr.FromTransportFailure)
	}
	return lnurl.ParseWithdrawRequest(resp.Body)
}

func (c *Client) withdraw(ctx context.Context, req *WithdrawRequest, bolt11 string) (*CallbackResponse, sdkerr.Error) {
	if req == nil {
		return nil, sdkerr.WithdrawRequestValidation("withdraw request is required")
	}
	inv, err := c.decodeInvoice(bolt11)
	if err != nil {
		return nil, err
	}
	if err := c.checkExpiry(inv); err != nil {
		return nil, err
	}
	if inv.AmountMsat == 0 {
		return nil, sdkerr.WithdrawRequestValidation("invoice must specify an amount")
	}
	if err := lnurl.ValidateWithdrawAmount(req, inv.AmountMsat); err != nil {
		return nil, err
	}

	resp, terr := c.transport.Get(ctx, req.Callback, map[string]string{"k1": req.K1, "pr": bolt11})
	if terr != nil {
		if resp != nil {
			if cb, perr := lnurl.ParseWithdrawCallback(resp.Body); perr == nil && !cb.OK() {
				return cb, nil
			}
		}
		return nil, sdkerr.Adapt(terr, sdkerr.FromTransportFailure)
	}
	cb, perr := lnurl.ParseWithdrawCallback(resp.Body)
	if perr != nil {
		return nil, perr
	}
	if !cb.OK() {
		c.log.WithContext(ctx).Info("withdraw refused by service", logger.Fields("reason", cb.Reason))
	}
	return cb, nil
}

// decodeInvoice runs the decoder. Decoder errors that know their own mapping
// keep it; the rest become invoice errors.
func (c *Client) decodeInvoice(bolt11 string) (Invoice, sdkerr.Error) {
	inv, err := c.decoder.Parse(bolt11)
	if err != nil {
		return Invoice{}, sdkerr.Adapt(err, sdkerr.FromInvoiceParseFailure)
	}
	if err := c.decoder.CheckSemantics(inv); err != nil {
		return Invoice{}, sdkerr.Adapt(err, sdkerr.FromInvoiceSemanticFailure)
	}
	if inv.Bolt11 == "" {
		inv.Bolt11 = bolt11
	}
	return inv, nil
}

// maxClockSkew is how far ahead of the local clock an invoice timestamp may be.
const maxClockSkew = time.Minute

// checkExpiry rejects invoices past their expiry. A timestamp up to
// maxClockSkew in the future counts as issued now; anything later cannot be
// aged and fails with a duration error.
func (c *Client) checkExpiry(inv Invoice) sdkerr.Error {
	now := c.now()
	if ahead := inv.Timestamp.Sub(now); ahead > 0 && ahead <= maxClockSkew {
		now = inv.Timestamp
	}
	age, err := sdkerr.Between(inv.Timestamp, now)
	if err != nil {
		return err
	}
	if inv.Expiry > 0 && age > inv.Expiry {
		return sdkerr.Invoice(fmt.Sprintf("invoice expired %s ago", (age - inv.Expiry).Round(time.Second)))
	}
	return nil
}
