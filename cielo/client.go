// Package cielo is a typed client for the Cielo feed API. It issues
// authenticated GET requests with bounded exponential-backoff retry
// and decodes the transaction feed into the shapes in package feed.
//
// The feed is linked to the account behind the API key: filters apply
// to that account's existing watchlists.
package cielo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/http/httpguts"

	"cielo-go-sdk/feed"
	"cielo-go-sdk/internal/observability"
)

// Default configuration values.
const (
	DefaultBaseURL          = "https://feed-api.cielo.finance/api/v1"
	DefaultTimeout          = 10 * time.Second
	DefaultMinRetryInterval = 500 * time.Millisecond
	DefaultMaxRetryInterval = 1000 * time.Millisecond
	DefaultMaxRetries       = 3
)

const apiKeyHeader = "X-API-KEY"

// Client talks to the Cielo feed API. It is immutable after New and
// safe for concurrent use; each call carries its own retry state.
//
// The API key is sensitive and is never written anywhere but the
// request header.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	retry   retryPolicy
}

// New creates a Client. The key must be non-empty and encodable as an
// HTTP header value; nothing touches the network here.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}
	if !httpguts.ValidHeaderFieldValue(apiKey) {
		return nil, ErrInvalidAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: DefaultTimeout},
		retry: retryPolicy{
			minInterval: DefaultMinRetryInterval,
			maxInterval: DefaultMaxRetryInterval,
			maxRetries:  DefaultMaxRetries,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetFeed fetches one page of the transaction feed and returns its
// items. Use GetFeedPage when the paging cursor is needed.
func (c *Client) GetFeed(ctx context.Context, filters feed.Filters) ([]feed.Item, error) {
	page, err := c.GetFeedPage(ctx, filters)
	if err != nil {
		return nil, err
	}
	return page.Data.Items, nil
}

// GetFeedPage fetches one page of the transaction feed and returns
// the full response envelope, paging block included. The final
// outcome after retries is classified per the error taxonomy:
// a transport failure is returned as-is, a non-200 status becomes a
// *StatusError carrying the body text, and a body that does not
// decode becomes a *feed.DecodeError.
func (c *Client) GetFeedPage(ctx context.Context, filters feed.Filters) (*feed.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/feed", nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.URL.RawQuery = filters.Query().Encode()
	req.Header.Set(apiKeyHeader, c.apiKey)

	start := time.Now()
	status, body, err := c.do(ctx, req)
	if err != nil {
		observability.RecordFeedRequest(observability.OutcomeTransportError, time.Since(start).Seconds())
		return nil, err
	}
	if status != http.StatusOK {
		observability.RecordFeedRequest(observability.OutcomeStatusError, time.Since(start).Seconds())
		return nil, &StatusError{StatusCode: status, Body: string(body)}
	}

	resp, err := feed.DecodeResponse(body)
	if err != nil {
		observability.RecordFeedRequest(observability.OutcomeDecodeError, time.Since(start).Seconds())
		return nil, err
	}

	observability.RecordFeedRequest(observability.OutcomeSuccess, time.Since(start).Seconds())
	observability.RecordItemsDecoded(len(resp.Data.Items))
	return resp, nil
}

// do runs one request through the retry loop and returns the last
// observed outcome: either a completed exchange (status + body) or
// the transport error of the final attempt. No synthetic error is
// manufactured for exhaustion. The request is a bodiless GET, so the
// same value is reused across attempts.
func (c *Client) do(ctx context.Context, req *http.Request) (int, []byte, error) {
	var (
		lastStatus int
		lastBody   []byte
		lastErr    error
	)

	for attempt := 0; attempt <= c.retry.maxRetries; attempt++ {
		if attempt > 0 {
			observability.RecordFeedRetry()
			select {
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			case <-time.After(c.retry.delay(attempt)):
			}
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Transport failure before a response arrived; transient.
			lastStatus, lastBody, lastErr = 0, nil, err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastStatus, lastBody, lastErr = 0, nil, fmt.Errorf("read response body: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			return resp.StatusCode, body, nil
		}

		// Any non-200 is treated as transient and retried.
		lastStatus, lastBody, lastErr = resp.StatusCode, body, nil
	}

	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}
