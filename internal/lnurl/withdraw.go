package lnurl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kbukum/paysdk/internal/sdkerr"
)

// WithdrawRequest is the first response of an LNURL-withdraw service.
type WithdrawRequest struct {
	Tag                string `json:"tag" validate:"required,eq=withdrawRequest"`
	Callback           string `json:"callback" validate:"required,http_url"`
	K1                 string `json:"k1" validate:"required"`
	DefaultDescription string `json:"defaultDescription"`
	MinWithdrawable    int64  `json:"minWithdrawable" validate:"gte=0"`
	MaxWithdrawable    int64  `json:"maxWithdrawable" validate:"gte=1,gtefield=MinWithdrawable"`
}

// CallbackResponse is the answer of the withdraw callback. A Status of ERROR is
// a valid answer; Reason explains the refusal.
type CallbackResponse struct {
	Status string `json:"status" validate:"required,oneof=OK ERROR"`
	Reason string `json:"reason,omitempty"`
}

// OK reports whether the service accepted the withdrawal.
func (r *CallbackResponse) OK() bool {
	return r.Status == StatusOK
}

// ParseWithdrawRequest decodes and validates a withdraw request body.
func ParseWithdrawRequest(body []byte) (*WithdrawRequest, sdkerr.Error) {
	if reason, failed := ServiceError(body); failed {
		return nil, sdkerr.WithdrawRequestValidation(reason)
	}
	var req WithdrawRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, sdkerr.FromWithdrawRequestValidationFailure(fmt.Errorf("decode withdraw request: %w", err))
	}
	if err := ValidateWithdrawRequest(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ValidateWithdrawRequest checks field constraints.
func ValidateWithdrawRequest(req *WithdrawRequest) sdkerr.Error {
	if err := getValidator().Struct(req); err != nil {
		return sdkerr.FromWithdrawRequestValidationFailure(err)
	}
	return nil
}

// ValidateWithdrawAmount checks that amountMsat is within the withdrawable range.
func ValidateWithdrawAmount(req *WithdrawRequest, amountMsat int64) sdkerr.Error {
	if amountMsat < req.MinWithdrawable || amountMsat > req.MaxWithdrawable {
		return sdkerr.WithdrawRequestValidation(fmt.Sprintf(
			"amount %d msat outside withdrawable range [%d, %d]", amountMsat, req.MinWithdrawable, req.MaxWithdrawable))
	}
	return nil
}

// ParseWithdrawCallback decodes the withdraw callback answer. Status is
// matched case-insensitively and normalised to upper case.
func ParseWithdrawCallback(body []byte) (*CallbackResponse, sdkerr.Error) {
	var resp CallbackResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, sdkerr.FromWithdrawCallbackParseFailure(err)
	}
	resp.Status = strings.ToUpper(resp.Status)
	if err := getValidator().Struct(&resp); err != nil {
		return nil, sdkerr.FromWithdrawCallbackParseFailure(err)
	}
	return &resp, nil
}
