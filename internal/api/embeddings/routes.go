package embeddings

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers embedding index routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/embeddings", func(r chi.Router) {
		r.Post("/chunks", h.IngestChunks)
		r.Get("/stats", h.Stats)
		r.Delete("/", h.Clear)
	})
}
