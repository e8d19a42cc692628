package nsx

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransportError means no response was obtained: unreachable host, TLS
// failure or timeout. Status-code semantics for callers are 0.
type TransportError struct {
	Err     error
	Timeout bool
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return "request timeout"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError means the manager answered with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Details    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nsx api error (status %d): %s", e.StatusCode, e.Message)
}

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// apiErrorBody is the manager's error envelope; either field may carry
// the human-readable message.
type apiErrorBody struct {
	ErrorMessage string `json:"error_message"`
	Message      string `json:"message"`
}

func newAPIError(status int, body []byte) *APIError {
	msg := "Request failed"
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.ErrorMessage != "":
			msg = parsed.ErrorMessage
		case parsed.Message != "":
			msg = parsed.Message
		}
	} else if len(body) > 0 {
		msg = string(body)
	}
	return &APIError{StatusCode: status, Message: msg, Details: json.RawMessage(body)}
}
