package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when an authenticated call is attempted
	// without a session token, or when the server rejects the credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable wraps transport-level failures (connection refused,
	// DNS, timeouts). Match with errors.Is.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError describes a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}
