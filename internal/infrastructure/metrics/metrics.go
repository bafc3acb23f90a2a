// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RefreshMetrics instrumenta el scheduler de recómputo del dashboard.
type RefreshMetrics struct {
	Recomputes prometheus.Counter
	Failures   prometheus.Counter
	Duration   prometheus.Histogram
}

// NewRefreshMetrics crea y registra los colectores en el registry dado.
func NewRefreshMetrics(reg prometheus.Registerer) *RefreshMetrics {
	m := &RefreshMetrics{
		Recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tallerpro",
			Subsystem: "refresh",
			Name:      "recomputes_total",
			Help:      "Recomputos del resumen del dashboard (timer + invalidaciones).",
		}),
		Failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tallerpro",
			Subsystem: "refresh",
			Name:      "failures_total",
			Help:      "Recomputos fallidos del resumen del dashboard.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tallerpro",
			Subsystem: "refresh",
			Name:      "duration_seconds",
			Help:      "Duración del recómputo del resumen del dashboard.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.Recomputes, m.Failures, m.Duration)
	return m
}
