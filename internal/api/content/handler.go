package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ContentUsecase
}

func NewHandler(usecase ContentUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// GenerateScheme handles POST /content/scheme-of-work
func (h *Handler) GenerateScheme(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateScheme")

	var req entity.GenerateSchemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.usecase.GenerateScheme(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// GetScheme handles GET /content/schemes/{scheme_id}
func (h *Handler) GetScheme(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("scheme_id", chi.URLParam(r, "scheme_id")),
		zap.String("action", "GetScheme"),
	)

	scheme, err := h.usecase.GetScheme(ctx, chi.URLParam(r, "scheme_id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, scheme)
}

// GetContext handles GET /content/contexts/{context_id}
func (h *Handler) GetContext(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("context_id", chi.URLParam(r, "context_id")),
		zap.String("action", "GetContext"),
	)

	rc, err := h.usecase.GetContext(ctx, chi.URLParam(r, "context_id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, rc)
}

// GenerateLessonPlan handles POST /content/lesson-plan
func (h *Handler) GenerateLessonPlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateLessonPlan")

	var req entity.GenerateLessonPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.usecase.GenerateLessonPlan(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// GetLessonPlan handles GET /content/lesson-plans/{lesson_plan_id}
func (h *Handler) GetLessonPlan(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("lesson_plan_id", chi.URLParam(r, "lesson_plan_id")),
		zap.String("action", "GetLessonPlan"),
	)

	plan, err := h.usecase.GetLessonPlan(ctx, chi.URLParam(r, "lesson_plan_id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, plan)
}

// GenerateLessonNotes handles POST /content/lesson-notes
func (h *Handler) GenerateLessonNotes(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateLessonNotes")

	var req entity.GenerateLessonNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.usecase.GenerateLessonNotes(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// GetLessonNotes handles GET /content/lesson-notes/{lesson_notes_id}
func (h *Handler) GetLessonNotes(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("lesson_notes_id", chi.URLParam(r, "lesson_notes_id")),
		zap.String("action", "GetLessonNotes"),
	)

	notes, err := h.usecase.GetLessonNotes(ctx, chi.URLParam(r, "lesson_notes_id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, notes)
}

// GenerateExam handles POST /content/exam
func (h *Handler) GenerateExam(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateExam")

	var req entity.GenerateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.usecase.GenerateExam(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// GetExam handles GET /content/exams/{exam_id}
func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("exam_id", chi.URLParam(r, "exam_id")),
		zap.String("action", "GetExam"),
	)

	exam, err := h.usecase.GetExam(ctx, chi.URLParam(r, "exam_id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, exam)
}

// ListExamsByScheme handles GET /content/schemes/{scheme_id}/exams
func (h *Handler) ListExamsByScheme(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("scheme_id", chi.URLParam(r, "scheme_id")),
		zap.String("action", "ListExamsByScheme"),
	)

	exams, err := h.usecase.ListExamsByScheme(ctx, chi.URLParam(r, "scheme_id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, entity.ListExamsResponse{Exams: exams})
}

// UpdateExam handles PATCH /content/exams/{exam_id}
func (h *Handler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "exam_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("exam_id", examID),
		zap.String("action", "UpdateExam"),
	)

	var req entity.UpdateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	exam, err := h.usecase.UpdateExam(ctx, examID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, exam)
}

// DeleteExam handles DELETE /content/exams/{exam_id}
func (h *Handler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "exam_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("exam_id", examID),
		zap.String("action", "DeleteExam"),
	)

	if err := h.usecase.DeleteExam(ctx, examID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, entity.DeleteExamResponse{Status: "deleted"})
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
	case errors.Is(err, entity.ErrSchemeNotFound),
		errors.Is(err, entity.ErrLessonPlanNotFound),
		errors.Is(err, entity.ErrLessonNotesNotFound),
		errors.Is(err, entity.ErrExamNotFound),
		errors.Is(err, entity.ErrContextNotFound):
		h.respondError(ctx, w, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrMissingContext):
		h.respondError(ctx, w, http.StatusConflict, err.Error(), err)
	case errors.Is(err, entity.ErrNoRelevantData):
		h.respondError(ctx, w, http.StatusUnprocessableEntity, err.Error(), err)
	case errors.Is(err, entity.ErrContextRetrieval):
		h.respondError(ctx, w, http.StatusBadGateway, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
