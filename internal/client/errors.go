package client

import (
	"fmt"
	"net/http"

	"discheck/internal/domain"
)

// APIError is a non-2xx reply from the disclaimer checker service.
// Detail carries the service's own message when the body was decodable.
type APIError struct {
	StatusCode int
	Detail     string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
}

// Unwrap maps 404 replies onto the domain sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return nil
}

// NewAPIError builds an APIError from a response status and decoded detail.
func NewAPIError(status int, detail, requestID string) *APIError {
	if detail == "" {
		detail = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Detail: detail, RequestID: requestID}
}
