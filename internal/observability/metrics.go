package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report builder.
type Metrics struct {
	RecordsGenerated  prometheus.Counter
	SummariesComputed prometheus.Counter
	BuildsCompleted   prometheus.Counter
	BuildFailures     prometheus.Counter
	BuildRunning      prometheus.Gauge

	GenerationDuration prometheus.Histogram
	BuildDuration      prometheus.Histogram

	// Per-artifact rendering metrics.
	ArtifactsRendered *prometheus.CounterVec   // labels: artifact
	RenderErrors      *prometheus.CounterVec   // labels: artifact
	RenderDuration    *prometheus.HistogramVec // labels: artifact
}

// NewMetrics creates and registers all report metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "burnout_report",
			Name:      "records_generated_total",
			Help:      "Total synthetic nurse-month records generated.",
		}),
		SummariesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "burnout_report",
			Name:      "summaries_computed_total",
			Help:      "Total location-month summaries computed.",
		}),
		BuildsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "burnout_report",
			Name:      "builds_completed_total",
			Help:      "Total report builds that finished successfully.",
		}),
		BuildFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "burnout_report",
			Name:      "build_failures_total",
			Help:      "Total report builds that failed.",
		}),
		BuildRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "burnout_report",
			Name:      "build_running",
			Help:      "1 while a report build is in progress, 0 otherwise.",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "burnout_report",
			Name:      "generation_duration_seconds",
			Help:      "Duration of cohort generation plus aggregation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "burnout_report",
			Name:      "build_duration_seconds",
			Help:      "Duration of a complete generate-aggregate-render build.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ArtifactsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "burnout_report",
			Name:      "artifacts_rendered_total",
			Help:      "Chart and map artifacts rendered, by artifact name.",
		}, []string{"artifact"}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "burnout_report",
			Name:      "render_errors_total",
			Help:      "Artifact rendering failures, by artifact name.",
		}, []string{"artifact"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "burnout_report",
			Name:      "render_duration_seconds",
			Help:      "Artifact rendering duration in seconds, by artifact name.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"artifact"}),
	}

	prometheus.MustRegister(
		m.RecordsGenerated,
		m.SummariesComputed,
		m.BuildsCompleted,
		m.BuildFailures,
		m.BuildRunning,
		m.GenerationDuration,
		m.BuildDuration,
		m.ArtifactsRendered,
		m.RenderErrors,
		m.RenderDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsGenerated:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "burnout_report", Name: "records_generated_total"}),
		SummariesComputed:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "burnout_report", Name: "summaries_computed_total"}),
		BuildsCompleted:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "burnout_report", Name: "builds_completed_total"}),
		BuildFailures:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "burnout_report", Name: "build_failures_total"}),
		BuildRunning:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "burnout_report", Name: "build_running"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "burnout_report", Name: "generation_duration_seconds"}),
		BuildDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "burnout_report", Name: "build_duration_seconds"}),
		ArtifactsRendered:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "burnout_report", Name: "artifacts_rendered_total"}, []string{"artifact"}),
		RenderErrors:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "burnout_report", Name: "render_errors_total"}, []string{"artifact"}),
		RenderDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "burnout_report", Name: "render_duration_seconds"}, []string{"artifact"}),
	}
}
