package api

import (
	"net/http"
	"time"

	contentapi "github.com/eduforge/curricula-backend/internal/api/content"
	"github.com/eduforge/curricula-backend/internal/api/docs"
	embeddingsapi "github.com/eduforge/curricula-backend/internal/api/embeddings"
	"github.com/eduforge/curricula-backend/internal/api/middleware"
	searchapi "github.com/eduforge/curricula-backend/internal/api/search"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	contentHandler *contentapi.Handler,
	searchHandler *searchapi.Handler,
	embeddingsHandler *embeddingsapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	contentapi.RegisterRoutes(r, contentHandler)
	searchapi.RegisterRoutes(r, searchHandler)
	embeddingsapi.RegisterRoutes(r, embeddingsHandler)

	return r
}
