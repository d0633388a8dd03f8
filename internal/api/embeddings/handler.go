package embeddings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase IngestUsecase
}

func NewHandler(usecase IngestUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// IngestChunks handles POST /embeddings/chunks
func (h *Handler) IngestChunks(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "IngestChunks")

	var req entity.IngestChunksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.usecase.IngestChunks(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// Stats handles GET /embeddings/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "IndexStats")

	resp, err := h.usecase.Stats(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Clear handles DELETE /embeddings
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ClearIndex")

	resp, err := h.usecase.Clear(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusBadGateway, "index operation failed", err)
	}
}
