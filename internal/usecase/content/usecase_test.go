package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const schemeContent = `# Scheme of Work

| Week | Topic | Learning Objectives |
|------|-------|--------------------|
| 1 | Fractions | Identify fractions |
| 2 | Decimals | Convert decimals |

WEEK 1
Introducing fractions with concrete objects.

WEEK 2
Converting between fractions and decimals.`

type memContextRepo struct {
	byID map[string]entity.CurriculumContext
}

func (r *memContextRepo) Create(ctx context.Context, rc entity.CurriculumContext) (*entity.CurriculumContext, error) {
	r.byID[rc.ID] = rc
	return &rc, nil
}

func (r *memContextRepo) Get(ctx context.Context, id string) (*entity.CurriculumContext, error) {
	rc, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrContextNotFound
	}
	return &rc, nil
}

type memSchemeRepo struct {
	byID map[string]entity.Scheme
}

func (r *memSchemeRepo) Create(ctx context.Context, s entity.Scheme) (*entity.Scheme, error) {
	r.byID[s.ID] = s
	return &s, nil
}

func (r *memSchemeRepo) Get(ctx context.Context, id string) (*entity.Scheme, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrSchemeNotFound
	}
	return &s, nil
}

func (r *memSchemeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return entity.ErrSchemeNotFound
	}
	delete(r.byID, id)
	return nil
}

type memLessonPlanRepo struct {
	byID map[string]entity.LessonPlan
}

func (r *memLessonPlanRepo) Create(ctx context.Context, p entity.LessonPlan) (*entity.LessonPlan, error) {
	r.byID[p.ID] = p
	return &p, nil
}

func (r *memLessonPlanRepo) Get(ctx context.Context, id string) (*entity.LessonPlan, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrLessonPlanNotFound
	}
	return &p, nil
}

func (r *memLessonPlanRepo) ListBySchemeAndWeeks(ctx context.Context, schemeID string, weeks []int) ([]*entity.LessonPlan, error) {
	var out []*entity.LessonPlan
	for _, p := range r.byID {
		for _, w := range weeks {
			if p.SchemeID == schemeID && p.Week == w {
				plan := p
				out = append(out, &plan)
			}
		}
	}
	return out, nil
}

type memNotesRepo struct {
	byID map[string]entity.LessonNotes
}

func (r *memNotesRepo) Create(ctx context.Context, n entity.LessonNotes) (*entity.LessonNotes, error) {
	r.byID[n.ID] = n
	return &n, nil
}

func (r *memNotesRepo) Get(ctx context.Context, id string) (*entity.LessonNotes, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrLessonNotesNotFound
	}
	return &n, nil
}

func (r *memNotesRepo) ListBySchemeAndWeeks(ctx context.Context, schemeID string, weeks []int) ([]*entity.LessonNotes, error) {
	var out []*entity.LessonNotes
	for _, n := range r.byID {
		for _, w := range weeks {
			if n.SchemeID == schemeID && n.Week == w {
				notes := n
				out = append(out, &notes)
			}
		}
	}
	return out, nil
}

type memExamRepo struct {
	byID map[string]entity.Exam
}

func (r *memExamRepo) Create(ctx context.Context, e entity.Exam) (*entity.Exam, error) {
	r.byID[e.ID] = e
	return &e, nil
}

func (r *memExamRepo) Get(ctx context.Context, id string) (*entity.Exam, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrExamNotFound
	}
	return &e, nil
}

func (r *memExamRepo) ListByScheme(ctx context.Context, schemeID string) ([]*entity.Exam, error) {
	var out []*entity.Exam
	for _, e := range r.byID {
		if e.SchemeID == schemeID {
			exam := e
			out = append(out, &exam)
		}
	}
	return out, nil
}

func (r *memExamRepo) Update(ctx context.Context, e entity.Exam) (*entity.Exam, error) {
	if _, ok := r.byID[e.ID]; !ok {
		return nil, entity.ErrExamNotFound
	}
	r.byID[e.ID] = e
	return &e, nil
}

func (r *memExamRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return entity.ErrExamNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeRetriever struct {
	result *entity.RetrievalResult
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query entity.RetrievalQuery, topK int) *entity.RetrievalResult {
	return f.result
}

type fakeLLM struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fixture struct {
	uc       *ContentUsecase
	contexts *memContextRepo
	schemes  *memSchemeRepo
	plans    *memLessonPlanRepo
	notes    *memNotesRepo
	exams    *memExamRepo
	llm      *fakeLLM
}

func newFixture(retriever Retriever, llm *fakeLLM) *fixture {
	f := &fixture{
		contexts: &memContextRepo{byID: map[string]entity.CurriculumContext{}},
		schemes:  &memSchemeRepo{byID: map[string]entity.Scheme{}},
		plans:    &memLessonPlanRepo{byID: map[string]entity.LessonPlan{}},
		notes:    &memNotesRepo{byID: map[string]entity.LessonNotes{}},
		exams:    &memExamRepo{byID: map[string]entity.Exam{}},
		llm:      llm,
	}
	f.uc = NewUsecase(
		f.contexts, f.schemes, f.plans, f.notes, f.exams,
		validator.NewValidator(), retriever, llm, "Nigeria", zap.NewNop(),
	)
	return f
}

func (f *fixture) seedScheme(t *testing.T) *entity.Scheme {
	t.Helper()

	rc, err := f.contexts.Create(context.Background(), entity.CurriculumContext{
		ID:      "ctx-1",
		Subject: "Mathematics",
		Context: "fractions curriculum material",
	})
	require.NoError(t, err)

	scheme, err := f.schemes.Create(context.Background(), entity.Scheme{
		ID: "scheme-1",
		Payload: entity.SchemePayload{
			Subject:    "Mathematics",
			GradeLevel: "Primary 4",
			Topic:      "Fractions",
			Country:    "Nigeria",
		},
		Content:   schemeContent,
		ContextID: &rc.ID,
	})
	require.NoError(t, err)

	return scheme
}

func validRetriever() *fakeRetriever {
	return &fakeRetriever{result: &entity.RetrievalResult{
		Status:  entity.RetrievalStatusValid,
		Context: "fractions curriculum material",
	}}
}

func TestGenerateScheme_Success(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{response: schemeContent})

	resp, err := f.uc.GenerateScheme(context.Background(), &entity.GenerateSchemeRequest{
		Subject:    "Mathematics",
		GradeLevel: "Primary 4",
		Topic:      "Fractions",
	})

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, schemeContent, resp.Content)
	assert.NotEmpty(t, resp.SchemeID)
	assert.NotEmpty(t, resp.ContextID)

	// Both the context and the scheme must be persisted, linked together.
	stored, err := f.schemes.Get(context.Background(), resp.SchemeID)
	require.NoError(t, err)
	require.NotNil(t, stored.ContextID)
	assert.Equal(t, resp.ContextID, *stored.ContextID)
	// Country defaults when the request omits it.
	assert.Equal(t, "Nigeria", stored.Payload.Country)

	assert.Contains(t, f.llm.lastPrompt, "scheme of work")
	assert.Contains(t, f.llm.lastPrompt, "fractions curriculum material")
}

func TestGenerateScheme_MissingFieldRejected(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{})

	_, err := f.uc.GenerateScheme(context.Background(), &entity.GenerateSchemeRequest{
		Subject: "Mathematics",
		Topic:   "Fractions",
	})

	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestGenerateScheme_RetrievalInvalid(t *testing.T) {
	retriever := &fakeRetriever{result: &entity.RetrievalResult{
		Status:  entity.RetrievalStatusInvalid,
		Message: "no curriculum content found",
	}}
	f := newFixture(retriever, &fakeLLM{})

	_, err := f.uc.GenerateScheme(context.Background(), &entity.GenerateSchemeRequest{
		Subject:    "Mathematics",
		GradeLevel: "Primary 4",
		Topic:      "Quantum Field Theory",
	})

	assert.ErrorIs(t, err, entity.ErrNoRelevantData)
	assert.Empty(t, f.schemes.byID)
	assert.Empty(t, f.contexts.byID)
}

func TestGenerateScheme_RetrievalError(t *testing.T) {
	retriever := &fakeRetriever{result: &entity.RetrievalResult{
		Status:  entity.RetrievalStatusError,
		Message: "the curriculum index is empty",
	}}
	f := newFixture(retriever, &fakeLLM{})

	_, err := f.uc.GenerateScheme(context.Background(), &entity.GenerateSchemeRequest{
		Subject:    "Mathematics",
		GradeLevel: "Primary 4",
		Topic:      "Fractions",
	})

	assert.ErrorIs(t, err, entity.ErrContextRetrieval)
	assert.Contains(t, err.Error(), "index is empty")
}

func TestGenerateLessonPlan_Success(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{response: "lesson plan body"})
	scheme := f.seedScheme(t)

	resp, err := f.uc.GenerateLessonPlan(context.Background(), &entity.GenerateLessonPlanRequest{
		SchemeID:    scheme.ID,
		Week:        1,
		Limitations: "no projector",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Week)
	assert.Equal(t, "lesson plan body", resp.Content)

	// The prompt is sliced to week 1 of the scheme, with its table topic.
	assert.Contains(t, f.llm.lastPrompt, "Fractions")
	assert.Contains(t, f.llm.lastPrompt, "Introducing fractions with concrete objects.")
	assert.NotContains(t, f.llm.lastPrompt, "Converting between fractions and decimals.")
	assert.Contains(t, f.llm.lastPrompt, "no projector")

	plan, err := f.plans.Get(context.Background(), resp.LessonPlanID)
	require.NoError(t, err)
	assert.Equal(t, scheme.ID, plan.SchemeID)
	assert.Equal(t, "Fractions", plan.Payload.Topic)
}

func TestGenerateLessonPlan_SchemeNotFound(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{})

	_, err := f.uc.GenerateLessonPlan(context.Background(), &entity.GenerateLessonPlanRequest{
		SchemeID: "missing",
		Week:     1,
	})

	assert.ErrorIs(t, err, entity.ErrSchemeNotFound)
}

func TestGenerateLessonPlan_SchemeWithoutContext(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{})
	_, err := f.schemes.Create(context.Background(), entity.Scheme{
		ID:      "orphan",
		Content: schemeContent,
	})
	require.NoError(t, err)

	_, err = f.uc.GenerateLessonPlan(context.Background(), &entity.GenerateLessonPlanRequest{
		SchemeID: "orphan",
		Week:     1,
	})

	assert.ErrorIs(t, err, entity.ErrMissingContext)
}

func TestGenerateLessonNotes_WeekComesFromPlan(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{response: "notes body"})
	scheme := f.seedScheme(t)

	plan, err := f.plans.Create(context.Background(), entity.LessonPlan{
		ID:       "plan-2",
		SchemeID: scheme.ID,
		Payload:  entity.LessonPlanPayload{Topic: "Decimals", Week: 2},
		Content:  "plan body for week 2",
		Week:     2,
	})
	require.NoError(t, err)

	resp, err := f.uc.GenerateLessonNotes(context.Background(), &entity.GenerateLessonNotesRequest{
		SchemeID:     scheme.ID,
		LessonPlanID: plan.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Week)
	assert.Contains(t, f.llm.lastPrompt, "plan body for week 2")
	assert.Contains(t, f.llm.lastPrompt, "Converting between fractions and decimals.")

	notes, err := f.notes.Get(context.Background(), resp.LessonNotesID)
	require.NoError(t, err)
	assert.Equal(t, 2, notes.Week)
	assert.Equal(t, "Decimals", notes.Payload.Topic)
}

func TestGenerateLessonNotes_PlanSchemeMismatch(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{})
	scheme := f.seedScheme(t)

	_, err := f.plans.Create(context.Background(), entity.LessonPlan{
		ID:       "foreign-plan",
		SchemeID: "other-scheme",
		Week:     1,
	})
	require.NoError(t, err)

	_, err = f.uc.GenerateLessonNotes(context.Background(), &entity.GenerateLessonNotesRequest{
		SchemeID:     scheme.ID,
		LessonPlanID: "foreign-plan",
	})

	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestGenerateExam_GathersMaterialsAndWeeks(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{response: "exam body"})
	scheme := f.seedScheme(t)

	_, err := f.plans.Create(context.Background(), entity.LessonPlan{
		ID:       "plan-1",
		SchemeID: scheme.ID,
		Content:  "plan body week 1",
		Week:     1,
	})
	require.NoError(t, err)

	resp, err := f.uc.GenerateExam(context.Background(), &entity.GenerateExamRequest{
		SchemeID: scheme.ID,
		// Duplicated and unsorted on purpose.
		Weeks: []int{2, 1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, resp.WeeksCovered)
	assert.Equal(t, 1, resp.MaterialsUsed.LessonPlans)
	assert.Equal(t, 0, resp.MaterialsUsed.LessonNotes)
	assert.Equal(t, "Nigeria", resp.Country)

	// Week 1 is covered by its plan; week 2 falls back to the scheme section.
	assert.Contains(t, f.llm.lastPrompt, "plan body week 1")
	assert.Contains(t, f.llm.lastPrompt, "Converting between fractions and decimals.")
	// Defaults from Normalize flow into the prompt.
	assert.Contains(t, f.llm.lastPrompt, "1 hour")
	assert.Contains(t, f.llm.lastPrompt, "50")
	// Topics come from the scheme's week table.
	assert.True(t, strings.Contains(f.llm.lastPrompt, "Fractions") && strings.Contains(f.llm.lastPrompt, "Decimals"))
}

func TestGenerateExam_RequiresWeeks(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{})
	scheme := f.seedScheme(t)

	_, err := f.uc.GenerateExam(context.Background(), &entity.GenerateExamRequest{
		SchemeID: scheme.ID,
	})

	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestUpdateExam_PartialUpdate(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{response: "exam body"})
	scheme := f.seedScheme(t)

	generated, err := f.uc.GenerateExam(context.Background(), &entity.GenerateExamRequest{
		SchemeID: scheme.ID,
		Weeks:    []int{1},
	})
	require.NoError(t, err)

	newContent := "revised exam body"
	newMarks := 80
	updated, err := f.uc.UpdateExam(context.Background(), generated.ExamID, &entity.UpdateExamRequest{
		Content:    &newContent,
		TotalMarks: &newMarks,
	})

	require.NoError(t, err)
	assert.Equal(t, "revised exam body", updated.Content)
	assert.Equal(t, 80, updated.Payload.TotalMarks)
	// Untouched fields survive.
	assert.Equal(t, "1 hour", updated.Payload.ExamDuration)
}

func TestDeleteExam(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{response: "exam body"})
	scheme := f.seedScheme(t)

	generated, err := f.uc.GenerateExam(context.Background(), &entity.GenerateExamRequest{
		SchemeID: scheme.ID,
		Weeks:    []int{1},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteExam(context.Background(), generated.ExamID))

	_, err = f.uc.GetExam(context.Background(), generated.ExamID)
	assert.ErrorIs(t, err, entity.ErrExamNotFound)

	err = f.uc.DeleteExam(context.Background(), generated.ExamID)
	assert.ErrorIs(t, err, entity.ErrExamNotFound)
}

func TestGenerateScheme_LLMFailurePropagates(t *testing.T) {
	f := newFixture(validRetriever(), &fakeLLM{err: errors.New("model overloaded")})

	_, err := f.uc.GenerateScheme(context.Background(), &entity.GenerateSchemeRequest{
		Subject:    "Mathematics",
		GradeLevel: "Primary 4",
		Topic:      "Fractions",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}
