package conic

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all conic endpoints onto the given router under the
// /conic prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/conic", func(r chi.Router) {
		r.Post("/solve", h.Solve)

		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Post("/calculate", h.Calculate)
			r.Post("/pan", h.Pan)
			r.Post("/zoom", h.Zoom)
			r.Post("/reset", h.ResetViewport)
			r.Get("/hover", h.Hover)
			r.Get("/plot.png", h.Plot)
			r.Get("/ws", h.Stream)
		})
	})
}
