package search

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/logger"
	"github.com/eduforge/curricula-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Handler exposes the retrieval engine directly. Retrieval outcomes are
// reported through the result status (valid/invalid/error) with HTTP 200,
// not through error responses.
type Handler struct {
	retriever Retriever
	validator *validator.Validator
}

func NewHandler(retriever Retriever, validator *validator.Validator) *Handler {
	return &Handler{
		retriever: retriever,
		validator: validator,
	}
}

// Search handles POST /search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Search")

	var req entity.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateSearch(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	result := h.retriever.Retrieve(ctx, req.RetrievalQuery, req.TopK)
	h.respondJSON(w, http.StatusOK, result)
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
