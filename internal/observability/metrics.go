// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for feed request metrics.
const (
	OutcomeSuccess        = "success"
	OutcomeTransportError = "transport_error"
	OutcomeStatusError    = "status_error"
	OutcomeDecodeError    = "decode_error"
)

// Metrics holds all Prometheus metrics for the SDK.
type Metrics struct {
	FeedRequests    *prometheus.CounterVec
	FeedRetries     prometheus.Counter
	RequestDuration prometheus.Histogram
	ItemsDecoded    prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "cielo_sdk"
	}

	return &Metrics{
		FeedRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "requests_total",
			Help:      "Total number of feed requests by final outcome",
		}, []string{"outcome"}),
		FeedRetries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "retries_total",
			Help:      "Total number of retry attempts across all feed requests",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "request_duration_seconds",
			Help:      "Feed request duration in seconds, retries and backoff included",
			Buckets:   prometheus.DefBuckets,
		}),
		ItemsDecoded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "items_decoded_total",
			Help:      "Total number of feed items decoded",
		}),
	}
}

// DefaultMetrics is the package-level metrics instance.
var DefaultMetrics = NewMetrics("")

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordFeedRequest records one completed feed request and its
// duration.
func RecordFeedRequest(outcome string, seconds float64) {
	DefaultMetrics.FeedRequests.WithLabelValues(outcome).Inc()
	DefaultMetrics.RequestDuration.Observe(seconds)
}

// RecordFeedRetry increments the retry counter.
func RecordFeedRetry() {
	DefaultMetrics.FeedRetries.Inc()
}

// RecordItemsDecoded adds to the decoded items counter.
func RecordItemsDecoded(n int) {
	DefaultMetrics.ItemsDecoded.Add(float64(n))
}
