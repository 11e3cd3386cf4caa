package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/burnout-report/internal/adapter/chart"
	httpadapter "github.com/couchcryptid/burnout-report/internal/adapter/http"
	"github.com/couchcryptid/burnout-report/internal/adapter/leaflet"
	"github.com/couchcryptid/burnout-report/internal/config"
	"github.com/couchcryptid/burnout-report/internal/domain"
	"github.com/couchcryptid/burnout-report/internal/observability"
	"github.com/couchcryptid/burnout-report/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Scenario shaping is optional; the default reproduces the pandemic
	// surge/mandate cohort.
	scenario := domain.DefaultScenario()
	if cfg.ScenarioFile != "" {
		scenario, err = config.LoadScenario(cfg.ScenarioFile)
		if err != nil {
			logger.Error("failed to load scenario", "file", cfg.ScenarioFile, "error", err)
			os.Exit(1)
		}
		logger.Info("scenario loaded", "file", cfg.ScenarioFile)
	}

	renderers := []report.Renderer{
		chart.NewTrendChart(cfg.OutputDir),
		chart.NewFearHeatmap(cfg.OutputDir),
		chart.NewLeaveHeatmap(cfg.OutputDir),
		leaflet.NewMap(cfg.OutputDir),
	}

	builder := report.New(
		report.GeneratorFunc(domain.GenerateCohort),
		report.AggregatorFunc(domain.Aggregate),
		renderers,
		logger,
		metrics,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := builder.Build(ctx, cfg.CohortParams(), scenario); err != nil {
		logger.Error("report build failed", "error", err)
		os.Exit(1)
	}

	if !cfg.Serve {
		logger.Info("report complete", "output_dir", cfg.OutputDir)
		return
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, cfg.OutputDir, builder, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
