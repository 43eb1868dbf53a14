package errors

// ErrorResponse is the JSON shape for SDK errors handed to an application's own clients.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error details.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message,omitempty"`
}

// ToResponse converts a public SDK error to an ErrorResponse.
// Only invoice errors expose a message.
func ToResponse(err Error) ErrorResponse {
	body := ErrorBody{Code: err.Code()}
	if inv, ok := err.(InvoiceError); ok {
		body.Message = inv.Message()
	}
	return ErrorResponse{Error: body}
}
