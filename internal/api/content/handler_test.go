package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContentUsecase returns canned values; err wins over the canned value
// for every method.
type fakeContentUsecase struct {
	err        error
	schemeResp *entity.GenerateSchemeResponse
	scheme     *entity.Scheme
	exam       *entity.Exam
}

func (f *fakeContentUsecase) GenerateScheme(ctx context.Context, req *entity.GenerateSchemeRequest) (*entity.GenerateSchemeResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schemeResp, nil
}

func (f *fakeContentUsecase) GetScheme(ctx context.Context, id string) (*entity.Scheme, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scheme, nil
}

func (f *fakeContentUsecase) GetContext(ctx context.Context, id string) (*entity.CurriculumContext, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) GenerateLessonPlan(ctx context.Context, req *entity.GenerateLessonPlanRequest) (*entity.GenerateLessonPlanResponse, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) GetLessonPlan(ctx context.Context, id string) (*entity.LessonPlan, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) GenerateLessonNotes(ctx context.Context, req *entity.GenerateLessonNotesRequest) (*entity.GenerateLessonNotesResponse, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) GetLessonNotes(ctx context.Context, id string) (*entity.LessonNotes, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) GenerateExam(ctx context.Context, req *entity.GenerateExamRequest) (*entity.GenerateExamResponse, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) GetExam(ctx context.Context, id string) (*entity.Exam, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.exam, nil
}

func (f *fakeContentUsecase) ListExamsByScheme(ctx context.Context, schemeID string) ([]*entity.Exam, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) UpdateExam(ctx context.Context, id string, req *entity.UpdateExamRequest) (*entity.Exam, error) {
	return nil, f.err
}

func (f *fakeContentUsecase) DeleteExam(ctx context.Context, id string) error {
	return f.err
}

func newRouter(uc ContentUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func TestGenerateScheme_Created(t *testing.T) {
	router := newRouter(&fakeContentUsecase{
		schemeResp: &entity.GenerateSchemeResponse{
			SchemeID:  "7f6e9f9a-0000-0000-0000-000000000001",
			ContextID: "7f6e9f9a-0000-0000-0000-000000000002",
			Content:   "WEEK 1\nIntroduction",
			Status:    "success",
		},
	})

	body := `{"subject":"Mathematics","grade_level":"Primary 4","topic":"Fractions"}`
	req := httptest.NewRequest(http.MethodPost, "/content/scheme-of-work", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp entity.GenerateSchemeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, resp.Content, "WEEK 1")
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"scheme not found", entity.ErrSchemeNotFound, http.StatusNotFound},
		{"missing field", entity.ErrMissingField, http.StatusBadRequest},
		{"malformed id", fmt.Errorf("%w: malformed id %q", entity.ErrInvalidParameter, "abc"), http.StatusBadRequest},
		{"missing context", entity.ErrMissingContext, http.StatusConflict},
		{"no relevant data", entity.ErrNoRelevantData, http.StatusUnprocessableEntity},
		{"context retrieval", entity.ErrContextRetrieval, http.StatusBadGateway},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeContentUsecase{err: tt.err})

			body := `{"subject":"Mathematics","grade_level":"Primary 4","topic":"Fractions"}`
			req := httptest.NewRequest(http.MethodPost, "/content/scheme-of-work", strings.NewReader(body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetScheme_NotFound(t *testing.T) {
	router := newRouter(&fakeContentUsecase{err: entity.ErrSchemeNotFound})

	req := httptest.NewRequest(http.MethodGet, "/content/schemes/missing-id", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp entity.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, http.StatusText(http.StatusNotFound), errResp.Error)
}

func TestDeleteExam_OK(t *testing.T) {
	router := newRouter(&fakeContentUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/content/exams/some-id", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.DeleteExamResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "deleted", resp.Status)
}
