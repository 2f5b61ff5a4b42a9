package cielo

import (
	"errors"
	"fmt"
)

// ErrEmptyAPIKey is returned by New when the API key is empty.
var ErrEmptyAPIKey = errors.New("cielo: API key must not be empty")

// ErrInvalidAPIKey is returned by New when the API key cannot be sent
// as an HTTP header value.
var ErrInvalidAPIKey = errors.New("cielo: API key is not a valid header value")

// StatusError is the final non-200 outcome of a feed request, after
// retries are exhausted. Body is the raw response body text; the API
// does not guarantee it is JSON, so it is not parsed.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cielo: response status %d: %s", e.StatusCode, e.Body)
}
