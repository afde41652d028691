package erold

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/erold-dev/mcp-server/internal/retry"
)

// fallbackErrorMessage is shown when a failure carries no usable error value,
// for example a recovered panic with a non-error payload.
const fallbackErrorMessage = "An unexpected error occurred"

// defaultRetryAfterSeconds is reported for rate-limit errors when the server
// did not supply a usable Retry-After hint.
const defaultRetryAfterSeconds = 60

// APIError is returned for any non-2xx response from the Erold API, and for
// conditions synthesized by the client: request timeouts carry status 408,
// rate limiting carries status 429, and network-level failures (DNS,
// connection refused) carry status 0. Extractable via errors.As().
// Supports Unwrap() when a lower-level cause exists.
type APIError struct {
	// StatusCode is the HTTP status that produced the error, or a
	// synthesized status for conditions without a server response.
	StatusCode int

	// Message is a human-readable description, taken from the response body
	// when the server provided one.
	Message string

	// Details carries the structured error.details payload, if any.
	Details json.RawMessage

	// Cause is the underlying transport error, if any.
	Cause error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erold: API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Cause }

// NewUnauthorizedError returns the 401 failure.
func NewUnauthorizedError() *APIError {
	return &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Authentication failed. Check that the API key is valid and has not been revoked.",
	}
}

// NewNotFoundError returns the 404 failure for a named resource.
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError returns the 400 failure, carrying any structured
// validation details the server reported.
func NewBadRequestError(message string, details json.RawMessage) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Details:    details,
	}
}

// NewServerError returns the 500 failure.
func NewServerError(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

// NewRateLimitError returns the 429 failure. retryAfterSeconds comes from the
// server's Retry-After header; values <= 0 fall back to the default hint.
func NewRateLimitError(retryAfterSeconds int) *APIError {
	if retryAfterSeconds <= 0 {
		retryAfterSeconds = defaultRetryAfterSeconds
	}
	return &APIError{
		StatusCode: http.StatusTooManyRequests,
		Message:    fmt.Sprintf("Rate limited. Try again in %d seconds.", retryAfterSeconds),
	}
}

// ConfigError is returned when required configuration is missing or invalid.
// Configuration failures are never retried. Extractable via errors.As().
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// FormatError renders an error for display to an assistant or a terminal
// user. API errors render as "API Error (status): message"; other errors
// render their own message. A nil error collapses to a fixed generic message,
// which is also what recovered non-error panic values surface as.
func FormatError(err error) string {
	if err == nil {
		return fallbackErrorMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("API Error (%d): %s", apiErr.StatusCode, apiErr.Message)
	}
	return err.Error()
}

// IsRetryable reports whether retrying the same request may succeed.
// Retryable failures are rate limiting (429), server errors (5xx), and
// request timeouts (408). Every other status, and every error that is not an
// APIError, is terminal.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return retry.RetryableStatus(apiErr.StatusCode)
}
