package lnurl

import (
	"encoding/json"
	"strings"
)

// Tags identifying the LNURL flow a response belongs to.
const (
	TagPayRequest      = "payRequest"
	TagWithdrawRequest = "withdrawRequest"
)

// Callback statuses.
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// statusEnvelope is the error shape any LNURL endpoint may answer with.
type statusEnvelope struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// ServiceError reports the reason when body is an {"status":"ERROR"} envelope.
func ServiceError(body []byte) (string, bool) {
	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", false
	}
	if !strings.EqualFold(env.Status, StatusError) {
		return "", false
	}
	if env.Reason == "" {
		return "service returned an error without a reason", true
	}
	return env.Reason, true
}
