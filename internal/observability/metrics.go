package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// aggregation pipeline.
type Metrics struct {
	RunsTotal  prometheus.Counter
	RunsFailed prometheus.Counter

	SignalsNormalized *prometheus.CounterVec // labels: source={citizen_report,social_media}

	ActiveThreats            prometheus.Gauge
	RecommendationsGenerated prometheus.Counter
	RunDuration              prometheus.Histogram
	LastRunTimestamp         prometheus.Gauge
}

// NewMetrics creates and registers all aggregation metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "threat_agg",
			Name:      "runs_total",
			Help:      "Total aggregation runs attempted.",
		}),
		RunsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "threat_agg",
			Name:      "runs_failed_total",
			Help:      "Aggregation runs that failed before producing a result.",
		}),
		SignalsNormalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "threat_agg",
			Name:      "signals_normalized_total",
			Help:      "Signals produced by the normalizer, by source.",
		}, []string{"source"}),
		ActiveThreats: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "threat_agg",
			Name:      "active_threats",
			Help:      "Threat clusters in the most recent aggregation run.",
		}),
		RecommendationsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "threat_agg",
			Name:      "recommendations_generated_total",
			Help:      "Authority recommendations emitted across all runs.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "threat_agg",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete aggregation run, fetch included.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "threat_agg",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last successful aggregation run.",
		}),
	}

	prometheus.MustRegister(
		m.RunsTotal,
		m.RunsFailed,
		m.SignalsNormalized,
		m.ActiveThreats,
		m.RecommendationsGenerated,
		m.RunDuration,
		m.LastRunTimestamp,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RunsTotal:                prometheus.NewCounter(prometheus.CounterOpts{Namespace: "threat_agg", Name: "runs_total"}),
		RunsFailed:               prometheus.NewCounter(prometheus.CounterOpts{Namespace: "threat_agg", Name: "runs_failed_total"}),
		SignalsNormalized:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "threat_agg", Name: "signals_normalized_total"}, []string{"source"}),
		ActiveThreats:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "threat_agg", Name: "active_threats"}),
		RecommendationsGenerated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "threat_agg", Name: "recommendations_generated_total"}),
		RunDuration:              prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "threat_agg", Name: "run_duration_seconds"}),
		LastRunTimestamp:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "threat_agg", Name: "last_run_timestamp_seconds"}),
	}
}
