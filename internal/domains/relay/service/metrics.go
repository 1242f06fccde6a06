package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "relay"

	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeSkipped = "skipped"
)

type Metrics struct {
	processed    *prometheus.CounterVec
	sendDuration prometheus.Histogram
}

// NewMetrics registers the relay collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		processed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "notifications_processed_total",
				Help:      "Count of notifications handled by the relay by outcome.",
			},
			[]string{"status"},
		),
		sendDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "push_send_duration_seconds",
				Help:      "Latency of push provider sends.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	reg.MustRegister(m.processed, m.sendDuration)

	return m
}

func (m *Metrics) incProcessed(outcome string) {
	m.processed.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeSend(seconds float64) {
	m.sendDuration.Observe(seconds)
}
