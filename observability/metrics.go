package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricClientRequestsTotal      = "unoclient_requests_total"
	MetricClientRequestErrorsTotal = "unoclient_request_errors_total"
	MetricClientRequestSeconds     = "unoclient_request_seconds"
)

// Error kind labels recorded on MetricClientRequestErrorsTotal.
const (
	ErrorKindFetch  = "fetch"
	ErrorKindDecode = "decode"
)

// Metrics bundles the collectors tracking outbound staking-API calls.
type Metrics struct {
	Requests *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New registers the client collectors against reg. A nil registerer gets a
// private registry so callers that don't export metrics still get counting.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: MetricClientRequestsTotal,
			Help: "Requests issued to the staking API, by endpoint.",
		}, []string{"endpoint"}),
		Errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: MetricClientRequestErrorsTotal,
			Help: "Failed staking API requests, by endpoint and error kind.",
		}, []string{"endpoint", "kind"}),
		Duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricClientRequestSeconds,
			Help:    "Staking API request latency in seconds, by endpoint.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
