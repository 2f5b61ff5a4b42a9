package cielo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cielo-go-sdk/feed"
)

const emptyEnvelope = `{"status":"ok","data":{"items":[],"paging":{"total_rows_in_page":0,"has_next_page":false}}}`

func TestRetryPolicyDelay(t *testing.T) {
	defaults := retryPolicy{
		minInterval: DefaultMinRetryInterval,
		maxInterval: DefaultMaxRetryInterval,
		maxRetries:  DefaultMaxRetries,
	}
	wide := retryPolicy{minInterval: 100 * time.Millisecond, maxInterval: 10 * time.Second}

	tests := []struct {
		name   string
		policy retryPolicy
		retry  int
		want   time.Duration
	}{
		{"defaults first retry", defaults, 1, 500 * time.Millisecond},
		{"defaults second retry", defaults, 2, 1000 * time.Millisecond},
		{"defaults capped", defaults, 3, 1000 * time.Millisecond},
		{"doubles from floor", wide, 1, 100 * time.Millisecond},
		{"doubles once", wide, 2, 200 * time.Millisecond},
		{"doubles thrice", wide, 4, 800 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.delay(tt.retry); got != tt.want {
				t.Errorf("delay(%d) = %v, want %v", tt.retry, got, tt.want)
			}
		})
	}
}

func TestRetryPolicyDelayMonotonic(t *testing.T) {
	p := retryPolicy{minInterval: 3 * time.Millisecond, maxInterval: 50 * time.Millisecond}

	prev := time.Duration(0)
	for retry := 1; retry <= 10; retry++ {
		d := p.delay(retry)
		if d < prev {
			t.Fatalf("delay(%d) = %v, below previous %v", retry, d, prev)
		}
		if d > p.maxInterval {
			t.Fatalf("delay(%d) = %v, above ceiling %v", retry, d, p.maxInterval)
		}
		prev = d
	}
}

func fastClient(t *testing.T, url string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithBaseURL(url),
		WithMinRetryInterval(time.Millisecond),
		WithMaxRetryInterval(2 * time.Millisecond),
	}, opts...)
	c, err := New("test-key", opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestGetFeedRetriesServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			http.Error(w, "internal", http.StatusInternalServerError)
			return
		}
		io.WriteString(w, emptyEnvelope)
	}))
	defer srv.Close()

	items, err := fastClient(t, srv.URL).GetFeed(context.Background(), feed.Filters{})
	if err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("server saw %d attempts, want 3", got)
	}
}

// The API reports transient conditions with 4xx statuses too, so they
// are retried the same as 5xx.
func TestGetFeedRetriesClientError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		io.WriteString(w, emptyEnvelope)
	}))
	defer srv.Close()

	if _, err := fastClient(t, srv.URL).GetFeed(context.Background(), feed.Filters{}); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if got := attempts.Load(); got != 2 {
		t.Errorf("server saw %d attempts, want 2", got)
	}
}

func TestGetFeedExhaustsRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "boom")
	}))
	defer srv.Close()

	_, err := fastClient(t, srv.URL, WithMaxRetries(3)).GetFeed(context.Background(), feed.Filters{})
	if err == nil {
		t.Fatal("GetFeed succeeded, want status error")
	}
	if got := attempts.Load(); got != 4 {
		t.Errorf("server saw %d attempts, want 4 (1 + 3 retries)", got)
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error is %T, want *StatusError", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", se.StatusCode)
	}
	if se.Body != "boom" {
		t.Errorf("Body = %q, want %q", se.Body, "boom")
	}
}

// scriptedTransport plays a fixed sequence of round-trip outcomes,
// repeating the last one once the script runs out.
type scriptedTransport struct {
	calls atomic.Int32
	steps []func() (*http.Response, error)
}

func (tr *scriptedTransport) RoundTrip(*http.Request) (*http.Response, error) {
	n := int(tr.calls.Add(1)) - 1
	if n >= len(tr.steps) {
		n = len(tr.steps) - 1
	}
	return tr.steps[n]()
}

func failStep(msg string) func() (*http.Response, error) {
	return func() (*http.Response, error) { return nil, errors.New(msg) }
}

func okStep(body string) func() (*http.Response, error) {
	return func() (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	}
}

func TestGetFeedRetriesTransportError(t *testing.T) {
	tr := &scriptedTransport{steps: []func() (*http.Response, error){
		failStep("connection reset"),
		failStep("connection reset"),
		okStep(emptyEnvelope),
	}}

	c := fastClient(t, "http://unreachable.invalid", WithHTTPClient(&http.Client{Transport: tr}))
	if _, err := c.GetFeed(context.Background(), feed.Filters{}); err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if got := tr.calls.Load(); got != 3 {
		t.Errorf("transport saw %d attempts, want 3", got)
	}
}

func TestGetFeedTransportErrorExhaustion(t *testing.T) {
	tr := &scriptedTransport{steps: []func() (*http.Response, error){
		failStep("connection refused"),
	}}

	c := fastClient(t, "http://unreachable.invalid",
		WithHTTPClient(&http.Client{Transport: tr}), WithMaxRetries(2))
	_, err := c.GetFeed(context.Background(), feed.Filters{})
	if err == nil {
		t.Fatal("GetFeed succeeded, want transport error")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error %q does not carry the last transport failure", err)
	}
	if got := tr.calls.Load(); got != 3 {
		t.Errorf("transport saw %d attempts, want 3 (1 + 2 retries)", got)
	}
}

func TestGetFeedContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New("test-key",
		WithBaseURL(srv.URL),
		WithMinRetryInterval(time.Hour),
		WithMaxRetryInterval(time.Hour),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.GetFeed(ctx, feed.Filters{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
}
