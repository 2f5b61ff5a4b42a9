package cielo

import (
	"net/http"
	"strings"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithMinRetryInterval sets the backoff floor between attempts.
func WithMinRetryInterval(d time.Duration) Option {
	return func(c *Client) {
		c.retry.minInterval = d
	}
}

// WithMaxRetryInterval sets the backoff ceiling between attempts.
func WithMaxRetryInterval(d time.Duration) Option {
	return func(c *Client) {
		c.retry.maxInterval = d
	}
}

// WithMaxRetries sets the maximum number of retries after the first
// attempt.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.retry.maxRetries = n
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithBaseURL points the client at a different API root, e.g. a stub
// server in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}
