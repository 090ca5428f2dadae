package authsdk

import "fmt"

// APIError represents a non-2xx response from the auth service.
// It carries the HTTP status code and the server's message so callers can
// branch on status without string matching.
type APIError struct {
	// StatusCode is the HTTP status code of the failed response
	StatusCode int

	// Message is the human-readable message from the error body
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("auth service returned %d: %s", e.StatusCode, e.Message)
}
