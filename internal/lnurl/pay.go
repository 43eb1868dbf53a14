package lnurl

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/kbukum/paysdk/internal/sdkerr"
)

// PayRequest is the first response of an LNURL-pay service.
type PayRequest struct {
	Tag            string `json:"tag" validate:"required,eq=payRequest"`
	Callback       string `json:"callback" validate:"required,http_url"`
	MinSendable    int64  `json:"minSendable" validate:"gte=1"`
	MaxSendable    int64  `json:"maxSendable" validate:"gtefield=MinSendable"`
	Metadata       string `json:"metadata" validate:"required"`
	CommentAllowed int    `json:"commentAllowed,omitempty" validate:"gte=0"`
}

// Description returns the text/plain entry of the metadata, or "".
func (r *PayRequest) Description() string {
	entries, err := decodeMetadata(r.Metadata)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e[0] == "text/plain" {
			return e[1]
		}
	}
	return ""
}

// MetadataHash returns the hex SHA-256 of the raw metadata string, which the
// invoice description hash must commit to.
func (r *PayRequest) MetadataHash() string {
	sum := sha256.Sum256([]byte(r.Metadata))
	return hex.EncodeToString(sum[:])
}

// PayResponse is the answer of the pay callback.
type PayResponse struct {
	PR            string         `json:"pr" validate:"required"`
	SuccessAction *SuccessAction `json:"successAction,omitempty"`
	Disposable    *bool          `json:"disposable,omitempty"`
}

// ParsePayRequest decodes and validates a pay request body.
func ParsePayRequest(body []byte) (*PayRequest, sdkerr.Error) {
	if reason, failed := ServiceError(body); failed {
		return nil, sdkerr.PayRequestValidation(reason)
	}
	var req PayRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, sdkerr.FromPayRequestValidationFailure(fmt.Errorf("decode pay request: %w", err))
	}
	if err := ValidatePayRequest(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ValidatePayRequest checks field constraints and the metadata layout.
func ValidatePayRequest(req *PayRequest) sdkerr.Error {
	if err := getValidator().Struct(req); err != nil {
		return sdkerr.FromPayRequestValidationFailure(err)
	}
	entries, err := decodeMetadata(req.Metadata)
	if err != nil {
		return sdkerr.PayRequestValidation("metadata: " + err.Error())
	}
	for _, e := range entries {
		if e[0] == "text/plain" {
			return nil
		}
	}
	return sdkerr.PayRequestValidation("metadata: missing text/plain entry")
}

// ValidatePayAmount checks that amountMsat is within the sendable range.
func ValidatePayAmount(req *PayRequest, amountMsat int64) sdkerr.Error {
	if amountMsat < req.MinSendable || amountMsat > req.MaxSendable {
		return sdkerr.PayRequestValidation(fmt.Sprintf(
			"amount %d msat outside sendable range [%d, %d]", amountMsat, req.MinSendable, req.MaxSendable))
	}
	return nil
}

// ValidateComment checks comment against the length the service allows.
func ValidateComment(req *PayRequest, comment string) sdkerr.Error {
	if comment == "" {
		return nil
	}
	if n := utf8.RuneCountInString(comment); n > req.CommentAllowed {
		return sdkerr.PayRequestValidation(fmt.Sprintf(
			"comment is %d characters, service allows %d", n, req.CommentAllowed))
	}
	return nil
}

// ParsePayResponse decodes the pay callback answer.
func ParsePayResponse(body []byte) (*PayResponse, sdkerr.Error) {
	if reason, failed := ServiceError(body); failed {
		return nil, sdkerr.PayRequestValidation(reason)
	}
	var resp PayResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, sdkerr.FromPayRequestValidationFailure(fmt.Errorf("decode pay response: %w", err))
	}
	if err := getValidator().Struct(&resp); err != nil {
		return nil, sdkerr.FromPayRequestValidationFailure(err)
	}
	if resp.SuccessAction != nil {
		if err := ValidateSuccessAction(resp.SuccessAction); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// decodeMetadata parses the metadata string, a JSON array of [mime, content] pairs.
func decodeMetadata(raw string) ([][2]string, error) {
	var entries [][]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("not a JSON array: %w", err)
	}
	out := make([][2]string, 0, len(entries))
	for i, e := range entries {
		if len(e) < 2 {
			return nil, fmt.Errorf("entry %d has %d elements", i, len(e))
		}
		var mime, content string
		if err := json.Unmarshal(e[0], &mime); err != nil {
			return nil, fmt.Errorf("entry %d: mime type is not a string", i)
		}
		// Image entries carry base64 strings, so content is always a string.
		if err := json.Unmarshal(e[1], &content); err != nil {
			return nil, fmt.Errorf("entry %d: content is not a string", i)
		}
		out = append(out, [2]string{mime, content})
	}
	return out, nil
}
