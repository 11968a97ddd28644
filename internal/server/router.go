package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"conic-visualizer/internal/conic"
	"conic-visualizer/internal/handlers"
	"conic-visualizer/internal/observability"
)

// NewRouter wires the middleware chain, the operational endpoints and the
// conic API around h.
func NewRouter(h *conic.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	conic.RegisterRoutes(r, h)

	return r
}
