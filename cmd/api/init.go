package main

import (
	"context"
	"log/slog"
	"os"

	"conic-visualizer/internal/conic"
	"conic-visualizer/internal/config"
	"conic-visualizer/internal/observability"
	"conic-visualizer/internal/session"

	"github.com/gogpu/gg"
	"github.com/prometheus/client_golang/prometheus"
)

// initTelemetry starts the OTLP exporters when enabled and registers the
// application metric instruments. Add new domain InitMetrics calls here as
// the project grows.
func initTelemetry(ctx context.Context, cfg *config.Config, store *session.Store) (observability.ShutdownFunc, error) {
	shutdown, err := observability.SetupTelemetry(ctx, cfg.ServiceName, cfg.TelemetryEnabled)
	if err != nil {
		return nil, err
	}

	if err := conic.InitMetrics(); err != nil {
		return nil, err
	}

	if err := conic.RegisterSessionGauge(prometheus.DefaultRegisterer, store); err != nil {
		return nil, err
	}

	return shutdown, nil
}

// initRendererLogging gives the rasterizer a warn-level slog logger on
// stderr; it is silent by default.
func initRendererLogging() {
	gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
}
