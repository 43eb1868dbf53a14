package sdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kbukum/paysdk/errors"
	"github.com/kbukum/paysdk/internal/lnurl"
	"github.com/kbukum/paysdk/internal/sdkerr"
)

// FetchPayRequest retrieves the pay request at endpoint, which is an http(s)
// URL or a lightning address (user@domain).
func (c *Client) FetchPayRequest(ctx context.Context, endpoint string) (*PayRequest, errors.Error) {
	ctx, op := c.begin(ctx, "fetch_pay_request")
	req, err := c.fetchPayRequest(ctx, endpoint)
	return finish(ctx, c, op, req, err)
}

// RequestInvoice asks the pay service for an invoice of amountMsat and checks
// that the invoice matches the request.
func (c *Client) RequestInvoice(ctx context.Context, req *PayRequest, amountMsat int64, comment string) (*PayInvoice, errors.Error) {
	ctx, op := c.begin(ctx, "request_invoice")
	inv, err := c.requestInvoice(ctx, req, amountMsat, comment)
	return finish(ctx, c, op, inv, err)
}

// DecryptionIV decodes the base64 IV of an encrypted success action.
func (c *Client) DecryptionIV(ctx context.Context, iv string) ([]byte, errors.Error) {
	ctx, op := c.begin(ctx, "decryption_iv")
	b, err := lnurl.DecodeIV(iv)
	return finish(ctx, c, op, b, err)
}

// DecryptSuccessAction decrypts an aes success action with the payment preimage.
func (c *Client) DecryptSuccessAction(ctx context.Context, sa *SuccessAction, preimage []byte) (string, errors.Error) {
	ctx, op := c.begin(ctx, "decrypt_success_action")
	plain, err := lnurl.DecryptSuccessAction(sa, preimage)
	return finish(ctx, c, op, plain, err)
}

func (c *Client) fetchPayRequest(ctx context.Context, endpoint string) (*PayRequest, sdkerr.Error) {
	target, ok := payEndpoint(endpoint)
	if !ok {
		return nil, sdkerr.PayRequestValidation(fmt.Sprintf("invalid pay endpoint %q", endpoint))
	}
	resp, err := c.transport.Get(ctx, target, nil)
	if err != nil {
		if resp != nil {
			if reason, failed := lnurl.ServiceError(resp.Body); failed {
				return nil, sdkerr.PayRequestValidation(reason)
			}
		}
		return nil, sdkerr.Adapt(err, sdkerr.FromTransportFailure)
	}
	return lnurl.ParsePayRequest(resp.Body)
}

func (c *Client) requestInvoice(ctx context.Context, req *PayRequest, amountMsat int64, comment string) (*PayInvoice, sdkerr.Error) {
	if req == nil {
		return nil, sdkerr.PayRequestValidation("pay request is required")
	}
	if err := lnurl.ValidatePayAmount(req, amountMsat); err != nil {
		return nil, err
	}
	if err := lnurl.ValidateComment(req, comment); err != nil {
		return nil, err
	}

	query := map[string]string{"amount": strconv.FormatInt(amountMsat, 10)}
	if comment != "" {
		query["comment"] = comment
	}
	resp, err := c.transport.Get(ctx, req.Callback, query)
	if err != nil {
		if resp != nil {
			if reason, failed := lnurl.ServiceError(resp.Body); failed {
				return nil, sdkerr.PayRequestValidation(reason)
			}
		}
		return nil, sdkerr.Adapt(err, sdkerr.FromTransportFailure)
	}
	payResp, perr := lnurl.ParsePayResponse(resp.Body)
	if perr != nil {
		return nil, perr
	}

	inv, ierr := c.decodeInvoice(payResp.PR)
	if ierr != nil {
		return nil, ierr
	}
	if ierr := c.checkExpiry(inv); ierr != nil {
		return nil, ierr
	}
	if inv.AmountMsat != amountMsat {
		return nil, sdkerr.PayRequestValidation(fmt.Sprintf(
			"invoice amount %d msat does not match requested %d msat", inv.AmountMsat, amountMsat))
	}
	if inv.DescriptionHash != "" && !strings.EqualFold(inv.DescriptionHash, req.MetadataHash()) {
		return nil, sdkerr.PayRequestValidation("invoice description hash does not commit to the pay request metadata")
	}
	return &PayInvoice{Invoice: inv, SuccessAction: payResp.SuccessAction}, nil
}

// payEndpoint resolves a lightning address to its well-known URL, or checks
// that endpoint is an absolute http(s) URL.
func payEndpoint(endpoint string) (string, bool) {
	if !strings.Contains(endpoint, "://") {
		user, domain, ok := strings.Cut(endpoint, "@")
		if !ok || user == "" || domain == "" {
			return "", false
		}
		scheme := "https"
		if strings.HasSuffix(domain, ".onion") {
			scheme = "http"
		}
		endpoint = scheme + "://" + domain + "/.well-known/lnurlp/" + url.PathEscape(strings.ToLower(user))
	}
	return serviceURL(endpoint)
}

func serviceURL(endpoint string) (string, bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return "", false
	}
	return u.String(), true
}
