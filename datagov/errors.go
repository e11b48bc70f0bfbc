package datagov

import (
	"errors"
	"fmt"
)

// Common errors returned by the Data.gov client. Classified API errors
// match these through errors.Is.
var (
	// ErrRateLimitExceeded indicates the hourly API rate limit was hit.
	ErrRateLimitExceeded = errors.New("data.gov API rate limit exceeded")

	// ErrInvalidAPIKey indicates the supplied api_key was rejected.
	ErrInvalidAPIKey = errors.New("invalid data.gov API key")
)

// APIError is a named error returned in a Data.gov JSON error body.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is maps well-known error codes to their sentinel errors so callers can
// use errors.Is(err, ErrRateLimitExceeded) without type assertions.
func (e *APIError) Is(target error) bool {
	switch e.Code {
	case "OVER_RATE_LIMIT":
		return target == ErrRateLimitExceeded
	case "API_KEY_INVALID":
		return target == ErrInvalidAPIKey
	}
	return false
}

// ParameterError indicates the API rejected one of the supplied query
// parameters. The message is taken verbatim from the error body.
type ParameterError struct {
	Parameter string
	Message   string
}

// Error implements the error interface
func (e *ParameterError) Error() string {
	return e.Message
}

// HTTPError is an unclassified HTTP failure: a non-2xx response whose body
// did not match any known Data.gov error shape (including non-JSON bodies).
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}
