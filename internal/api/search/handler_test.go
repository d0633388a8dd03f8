package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetriever struct {
	result    *entity.RetrievalResult
	lastQuery entity.RetrievalQuery
	lastTopK  int
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query entity.RetrievalQuery, topK int) *entity.RetrievalResult {
	f.lastQuery = query
	f.lastTopK = topK
	return f.result
}

func TestSearch_ValidQuery(t *testing.T) {
	retriever := &fakeRetriever{
		result: &entity.RetrievalResult{
			Status:       entity.RetrievalStatusValid,
			Context:      "Fractions are parts of a whole.",
			Alternatives: []string{},
		},
	}
	h := NewHandler(retriever, validator.NewValidator())

	body := `{"country":"Nigeria","subject":"Maths","grade_level":"Primary 4","topic":"Fractions","top_k":5}`
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result entity.RetrievalResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, entity.RetrievalStatusValid, result.Status)
	assert.Equal(t, "Fractions are parts of a whole.", result.Context)

	assert.Equal(t, "Maths", retriever.lastQuery.Subject)
	assert.Equal(t, 5, retriever.lastTopK)
}

func TestSearch_StatusPassedThroughAsOK(t *testing.T) {
	// Retrieval failures travel in the result status, not in the HTTP status.
	retriever := &fakeRetriever{
		result: &entity.RetrievalResult{
			Status:       entity.RetrievalStatusError,
			Message:      "the curriculum index is empty; ingest a curriculum document first",
			Alternatives: []string{},
		},
	}
	h := NewHandler(retriever, validator.NewValidator())

	body := `{"country":"Nigeria","subject":"Maths","grade_level":"Primary 4","topic":"Fractions"}`
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result entity.RetrievalResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, entity.RetrievalStatusError, result.Status)
}

func TestSearch_MissingField(t *testing.T) {
	h := NewHandler(&fakeRetriever{}, validator.NewValidator())

	body := `{"country":"Nigeria","subject":"Maths","grade_level":"Primary 4"}`
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp entity.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Contains(t, errResp.Message, "topic")
}

func TestSearch_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeRetriever{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
