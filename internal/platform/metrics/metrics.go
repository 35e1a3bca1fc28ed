package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	SignupsTotal         prometheus.Counter
	UnregistrationsTotal prometheus.Counter
	RejectedTotal        *prometheus.CounterVec
	EndpointLatency      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		SignupsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_signups_total",
			Help: "Total number of successful activity signups",
		}),
		UnregistrationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_unregistrations_total",
			Help: "Total number of successful unregistrations",
		}),
		RejectedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_rejected_requests_total",
			Help: "Total number of rejected registry mutations, labeled by operation and reason",
		}, []string{"operation", "reason"}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mergington_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// IncrementSignups increments the successful signups counter by 1
func (m *Metrics) IncrementSignups() {
	m.SignupsTotal.Inc()
}

// IncrementUnregistrations increments the successful unregistrations counter by 1
func (m *Metrics) IncrementUnregistrations() {
	m.UnregistrationsTotal.Inc()
}

// IncrementRejected increments the rejection counter with operation and reason labels
func (m *Metrics) IncrementRejected(operation, reason string) {
	m.RejectedTotal.WithLabelValues(operation, reason).Inc()
}

// ObserveEndpointLatency records the latency for a given endpoint
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}
