package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conic-visualizer/internal/conic"
	"conic-visualizer/internal/config"
	"conic-visualizer/internal/observability"
	"conic-visualizer/internal/render"
	"conic-visualizer/internal/server"
	"conic-visualizer/internal/session"

	"go.uber.org/zap"
)

func main() {

	ctx := context.Background()

	// Config
	if err := loadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	err = observability.InitLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	store := session.NewStore(cfg.Session.Capacity, cfg.Session.TTL)

	// Tracing, metrics, logs
	shutdown, err := initTelemetry(ctx, cfg, store)
	if err != nil {
		observability.Logger.Fatal("telemetry setup failed", zap.Error(err))
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			observability.Logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	// Renderer
	initRendererLogging()
	renderer, err := render.New()
	if err != nil {
		observability.Logger.Fatal("renderer setup failed", zap.Error(err))
	}
	defer renderer.Close()

	// Router
	handler := conic.NewHandler(store, renderer, conic.Options{
		Tolerance: cfg.Tolerance,
		Width:     cfg.Canvas.Width,
		Height:    cfg.Canvas.Height,
	})
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Port),
			zap.String("service", cfg.ServiceName),
			zap.Bool("telemetry", cfg.TelemetryEnabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Warn("graceful shutdown failed", zap.Error(err))
	}
	observability.Logger.Info("server stopped")
}
