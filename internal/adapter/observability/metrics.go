package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fairyhunter13/hrm-system/internal/domain"
)

// InitMetrics holds the collectors of one initializer process on a private
// registry, so nothing leaks into the global default registerer.
// A nil *InitMetrics is valid and records nothing.
type InitMetrics struct {
	registry *prometheus.Registry

	RunsTotal        *prometheus.CounterVec
	ProbeDuration    prometheus.Histogram
	LastRunTimestamp prometheus.Gauge
}

// NewInitMetrics creates and registers the initializer collectors.
func NewInitMetrics() *InitMetrics {
	m := &InitMetrics{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hrm_init_runs_total",
				Help: "Total number of initializer runs by outcome",
			},
			[]string{"outcome"},
		),
		ProbeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hrm_dependency_probe_duration_seconds",
				Help:    "Dependency probe duration in seconds",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
			},
		),
		LastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "hrm_init_last_run_timestamp_seconds",
				Help: "Unix time of the last initializer run",
			},
		),
	}
	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(m.RunsTotal, m.ProbeDuration, m.LastRunTimestamp)
	return m
}

// ObserveProbe records how long the dependency probe took.
func (m *InitMetrics) ObserveProbe(d time.Duration) {
	if m == nil {
		return
	}
	m.ProbeDuration.Observe(d.Seconds())
}

// RecordOutcome counts a finished run.
func (m *InitMetrics) RecordOutcome(outcome domain.Outcome, at time.Time) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(string(outcome)).Inc()
	m.LastRunTimestamp.Set(float64(at.UnixNano()) / 1e9)
}

// WriteTextfile writes all collected metrics to path in the Prometheus text
// format. The file is replaced atomically.
func (m *InitMetrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("op=observability.WriteTextfile: %w", err)
	}
	return nil
}
