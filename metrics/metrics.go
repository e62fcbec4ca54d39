// Package metrics instruments data source dispatch with Prometheus.
//
// Exposed series:
//   - odata_requests_total{resource, outcome} (Counter): dispatched requests by
//     resource type and outcome ("ok", "status", "transport", "uri", "throttled")
//   - odata_request_duration_seconds{resource} (Histogram): time from dispatch to
//     response headers, limiter wait excluded
//   - odata_limiter_wait_seconds (Histogram): time spent waiting for limiter admission
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomeTransport = "transport"
	OutcomeURI       = "uri"
	OutcomeThrottled = "throttled"
)

// Collector records request metrics. A nil *Collector is valid and
// records nothing. It is safe for concurrent use.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	limiterWait     prometheus.Histogram
}

// New creates a Collector on the default registerer.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Collector using the supplied registerer.
// It panics if the series are already registered there.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	return &Collector{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "odata_requests_total",
				Help: "Total number of OData requests by resource type and outcome",
			},
			[]string{"resource", "outcome"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "odata_request_duration_seconds",
				Help:    "Duration of OData requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		limiterWait: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "odata_limiter_wait_seconds",
				Help:    "Time spent waiting for rate limiter admission in seconds",
				Buckets: []float64{0, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
	}
}

// RecordRequest counts one request for resource with the given outcome.
func (c *Collector) RecordRequest(resource, outcome string, duration time.Duration) {
	if c == nil {
		return
	}

	c.requestsTotal.WithLabelValues(resource, outcome).Inc()
	if outcome != OutcomeURI && outcome != OutcomeThrottled {
		c.requestDuration.WithLabelValues(resource).Observe(duration.Seconds())
	}
}

// RecordLimiterWait observes one limiter admission wait.
func (c *Collector) RecordLimiterWait(waited time.Duration) {
	if c == nil {
		return
	}

	c.limiterWait.Observe(waited.Seconds())
}
