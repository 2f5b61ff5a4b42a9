package cielo

import "time"

// retryPolicy is the bounded exponential backoff applied between
// feed request attempts. One logical request makes at most
// maxRetries+1 attempts; the wait before retry n doubles from
// minInterval and is capped at maxInterval.
//
// Classification lives in Client.do: a completed exchange is
// transient unless its status is exactly 200 (any non-200, 4xx
// included, is retried — the upstream API's documented behavior), and
// a transport failure is always transient. Request build errors never
// reach the retry loop.
type retryPolicy struct {
	minInterval time.Duration
	maxInterval time.Duration
	maxRetries  int
}

// delay returns the wait before retry n (1-based). Monotonically
// non-decreasing, floor minInterval, ceiling maxInterval.
func (p retryPolicy) delay(retry int) time.Duration {
	d := p.minInterval
	for i := 1; i < retry; i++ {
		d *= 2
		if d >= p.maxInterval {
			break
		}
	}
	if d > p.maxInterval {
		return p.maxInterval
	}
	return d
}
