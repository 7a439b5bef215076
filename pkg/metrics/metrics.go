package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the mart refresh engine.
var (
	RefreshRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mart_refresh_runs_total",
		Help: "Mart refresh invocations by outcome.",
	}, []string{"outcome"})

	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mart_refresh_duration_seconds",
		Help:    "Wall-clock duration of a full mart refresh.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	EntityFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mart_refresh_entity_failures_total",
		Help: "Entities skipped due to isolated computation failures.",
	})

	AlertsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mart_alerts_generated_total",
		Help: "Alerts generated per invocation by severity.",
	}, []string{"severity"})
)
