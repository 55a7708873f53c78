// Package metrics exposes post generation counters for prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	generated *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubposts_generated_total",
			Help: "Post generation attempts by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clubposts_generation_seconds",
			Help:    "Time spent generating one post.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	reg.MustRegister(m.generated, m.duration)
	return m
}

// Observe records one generation. Safe on a nil receiver.
func (m *Metrics) Observe(kind, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(kind, outcome).Inc()
	m.duration.WithLabelValues(kind).Observe(took.Seconds())
}
