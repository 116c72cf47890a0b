package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrAccountMissing marks a response that lacked the account id every
// money-movement screen needs. Fatal to the operation, not to the session.
var ErrAccountMissing = errors.New("account id is missing")

// APIError is a non-2xx answer from the banking API with its raw body kept
// for message extraction.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if msg := e.message(); msg != "" {
		return msg
	}
	return fmt.Sprintf("bank api responded %d", e.Status)
}

// message pulls a human-readable message out of the error body: a structured
// {"message": ...} payload wins, then a plain string body. Empty when the
// body carries neither.
func (e *APIError) message() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return ""
	}

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &structured); err == nil && strings.TrimSpace(structured.Message) != "" {
		return strings.TrimSpace(structured.Message)
	}

	var quoted string
	if err := json.Unmarshal([]byte(body), &quoted); err == nil {
		return strings.TrimSpace(quoted)
	}

	// Not JSON at all: the backend answered with a plain text body.
	if !strings.HasPrefix(body, "{") && !strings.HasPrefix(body, "[") {
		return body
	}
	return ""
}

// ErrorMessage produces the message shown to the user for a failed call.
// Backend-supplied messages take precedence over transport errors, which take
// precedence over the caller's fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.message(); msg != "" {
			return msg
		}
		return fallback
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
