// Package report orchestrates one build of the burnout report: generate the
// synthetic cohort, aggregate it, and hand the results to each artifact
// renderer in turn.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/burnout-report/internal/domain"
	"github.com/couchcryptid/burnout-report/internal/observability"
)

// Generator produces a synthetic cohort from parameters and rule tables.
type Generator interface {
	Generate(params domain.Params, scenario domain.Scenario) (domain.Cohort, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(domain.Params, domain.Scenario) (domain.Cohort, error)

// Generate calls f.
func (f GeneratorFunc) Generate(params domain.Params, scenario domain.Scenario) (domain.Cohort, error) {
	return f(params, scenario)
}

// Aggregator reduces generated records to per-(location, month) summaries.
type Aggregator interface {
	Aggregate(records []domain.NurseMonthRecord) []domain.LocationMonthSummary
}

// AggregatorFunc adapts a plain function to the Aggregator interface.
type AggregatorFunc func([]domain.NurseMonthRecord) []domain.LocationMonthSummary

// Aggregate calls f.
func (f AggregatorFunc) Aggregate(records []domain.NurseMonthRecord) []domain.LocationMonthSummary {
	return f(records)
}

// Dataset is everything a renderer may draw from: the generated cohort, its
// aggregated summaries, and the static hospital site table.
type Dataset struct {
	Cohort    domain.Cohort
	Summaries []domain.LocationMonthSummary
	Sites     []domain.HospitalSite
}

// Renderer writes one artifact (a chart image, a map page) from a dataset.
type Renderer interface {
	// Name identifies the artifact in logs, metrics, and errors.
	Name() string
	Render(ctx context.Context, data Dataset) error
}

// Builder runs the generate-aggregate-render sequence.
type Builder struct {
	generator  Generator
	aggregator Aggregator
	renderers  []Renderer
	logger     *slog.Logger
	metrics    *observability.Metrics
	ready      atomic.Bool
}

// New creates a Builder with the given stages and observability.
func New(g Generator, a Aggregator, renderers []Renderer, logger *slog.Logger, metrics *observability.Metrics) *Builder {
	return &Builder{
		generator:  g,
		aggregator: a,
		renderers:  renderers,
		logger:     logger,
		metrics:    metrics,
	}
}

// CheckReadiness returns nil once at least one build has completed, or an
// error describing why the service is not yet ready.
func (b *Builder) CheckReadiness(_ context.Context) error {
	if !b.ready.Load() {
		return errors.New("no report build has completed yet")
	}
	return nil
}

// Build runs one complete report build. It fails fast on invalid parameters,
// renders artifacts in registration order, and stops at the first renderer
// error or context cancellation. No partial readiness: the builder reports
// ready only after a whole build succeeds.
func (b *Builder) Build(ctx context.Context, params domain.Params, scenario domain.Scenario) error {
	start := time.Now()
	b.metrics.BuildRunning.Set(1)
	defer b.metrics.BuildRunning.Set(0)

	b.logger.Info("report build started",
		"seed", params.Seed,
		"months", len(params.Months),
		"nurses", params.NurseCount,
		"locations", len(params.Locations),
	)

	data, err := b.buildDataset(params, scenario)
	if err != nil {
		b.metrics.BuildFailures.Inc()
		return err
	}

	if err := b.renderAll(ctx, data); err != nil {
		b.metrics.BuildFailures.Inc()
		return err
	}

	b.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	b.metrics.BuildsCompleted.Inc()
	b.ready.Store(true)

	b.logger.Info("report build complete",
		"records", len(data.Cohort.Records),
		"summaries", len(data.Summaries),
		"artifacts", len(b.renderers),
		"duration", time.Since(start),
	)
	return nil
}

// buildDataset runs generation and aggregation and records their metrics.
func (b *Builder) buildDataset(params domain.Params, scenario domain.Scenario) (Dataset, error) {
	genStart := time.Now()

	cohort, err := b.generator.Generate(params, scenario)
	if err != nil {
		return Dataset{}, fmt.Errorf("generate cohort: %w", err)
	}
	summaries := b.aggregator.Aggregate(cohort.Records)

	b.metrics.GenerationDuration.Observe(time.Since(genStart).Seconds())
	b.metrics.RecordsGenerated.Add(float64(len(cohort.Records)))
	b.metrics.SummariesComputed.Add(float64(len(summaries)))
	b.logger.Info("cohort generated",
		"records", len(cohort.Records),
		"summaries", len(summaries),
		"generated_at", cohort.GeneratedAt,
	)

	return Dataset{
		Cohort:    cohort,
		Summaries: summaries,
		Sites:     domain.HospitalSites(),
	}, nil
}

// renderAll runs every renderer against the dataset, checking the context
// between artifacts.
func (b *Builder) renderAll(ctx context.Context, data Dataset) error {
	for _, r := range b.renderers {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("build cancelled: %w", err)
		}

		renderStart := time.Now()
		if err := r.Render(ctx, data); err != nil {
			b.metrics.RenderErrors.WithLabelValues(r.Name()).Inc()
			return fmt.Errorf("render %s: %w", r.Name(), err)
		}
		b.metrics.ArtifactsRendered.WithLabelValues(r.Name()).Inc()
		b.metrics.RenderDuration.WithLabelValues(r.Name()).Observe(time.Since(renderStart).Seconds())

		b.logger.Info("artifact rendered", "artifact", r.Name(), "duration", time.Since(renderStart))
	}
	return nil
}
