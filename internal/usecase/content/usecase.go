package content

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/eduforge/curricula-backend/internal/pkg/validator"
	"github.com/eduforge/curricula-backend/internal/pkg/weeks"
	"github.com/eduforge/curricula-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const statusSuccess = "success"

// ContentUsecase implements the generation flows. Every artifact is grounded
// in a retrieval context persisted alongside it; generation never proceeds
// without one.
type ContentUsecase struct {
	contextRepo    repository.ContextRepository
	schemeRepo     repository.SchemeRepository
	lessonPlanRepo repository.LessonPlanRepository
	notesRepo      repository.LessonNotesRepository
	examRepo       repository.ExamRepository
	validator      *validator.Validator
	retriever      Retriever
	llmConnector   LLMConnector
	defaultCountry string
	logger         *zap.Logger
}

func NewUsecase(
	contextRepo repository.ContextRepository,
	schemeRepo repository.SchemeRepository,
	lessonPlanRepo repository.LessonPlanRepository,
	notesRepo repository.LessonNotesRepository,
	examRepo repository.ExamRepository,
	validator *validator.Validator,
	retriever Retriever,
	llmConnector LLMConnector,
	defaultCountry string,
	logger *zap.Logger,
) *ContentUsecase {
	return &ContentUsecase{
		contextRepo:    contextRepo,
		schemeRepo:     schemeRepo,
		lessonPlanRepo: lessonPlanRepo,
		notesRepo:      notesRepo,
		examRepo:       examRepo,
		validator:      validator,
		retriever:      retriever,
		llmConnector:   llmConnector,
		defaultCountry: defaultCountry,
		logger:         logger,
	}
}

// GenerateScheme retrieves curriculum context and generates a scheme of work
func (uc *ContentUsecase) GenerateScheme(ctx context.Context, req *entity.GenerateSchemeRequest) (*entity.GenerateSchemeResponse, error) {
	if req.Country == "" {
		req.Country = uc.defaultCountry
	}
	if err := uc.validator.ValidateGenerateScheme(req); err != nil {
		return nil, err
	}

	query := entity.RetrievalQuery{
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
		Topic:      req.Topic,
		Country:    req.Country,
	}

	result := uc.retriever.Retrieve(ctx, query, 0)
	switch result.Status {
	case entity.RetrievalStatusError:
		return nil, fmt.Errorf("%w: %s", entity.ErrContextRetrieval, result.Message)
	case entity.RetrievalStatusInvalid:
		return nil, fmt.Errorf("%w: %s", entity.ErrNoRelevantData, result.Message)
	}

	storedContext, err := uc.contextRepo.Create(ctx, entity.CurriculumContext{
		ID:         uuid.New().String(),
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
		Topic:      req.Topic,
		Country:    req.Country,
		Context:    result.Context,
	})
	if err != nil {
		return nil, fmt.Errorf("persist retrieval context: %w", err)
	}

	prompt, err := renderPrompt(schemePrompt, schemePromptData{
		Subject:    req.Subject,
		GradeLevel: req.GradeLevel,
		Topic:      req.Topic,
		Country:    req.Country,
		Context:    storedContext.Context,
	})
	if err != nil {
		return nil, err
	}

	generated, err := uc.llmConnector.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate scheme of work: %w", err)
	}

	scheme, err := uc.schemeRepo.Create(ctx, entity.Scheme{
		ID: uuid.New().String(),
		Payload: entity.SchemePayload{
			Subject:    req.Subject,
			GradeLevel: req.GradeLevel,
			Topic:      req.Topic,
			Country:    req.Country,
		},
		Content:   generated,
		ContextID: &storedContext.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("persist scheme: %w", err)
	}

	ctxzap.Info(ctx, "scheme of work generated",
		zap.String("scheme_id", scheme.ID),
		zap.String("context_id", storedContext.ID),
	)

	return &entity.GenerateSchemeResponse{
		SchemeID:  scheme.ID,
		ContextID: storedContext.ID,
		Content:   scheme.Content,
		Status:    statusSuccess,
	}, nil
}

// GetScheme returns a stored scheme of work
func (uc *ContentUsecase) GetScheme(ctx context.Context, id string) (*entity.Scheme, error) {
	return uc.schemeRepo.Get(ctx, id)
}

// GetContext returns the retrieval context an artifact was generated from
func (uc *ContentUsecase) GetContext(ctx context.Context, id string) (*entity.CurriculumContext, error) {
	return uc.contextRepo.Get(ctx, id)
}

// GenerateLessonPlan generates a lesson plan for one week of a scheme
func (uc *ContentUsecase) GenerateLessonPlan(ctx context.Context, req *entity.GenerateLessonPlanRequest) (*entity.GenerateLessonPlanResponse, error) {
	if err := uc.validator.ValidateGenerateLessonPlan(req); err != nil {
		return nil, err
	}

	scheme, err := uc.schemeRepo.Get(ctx, req.SchemeID)
	if err != nil {
		return nil, err
	}

	storedContext, err := uc.requireContext(ctx, scheme.ContextID)
	if err != nil {
		return nil, err
	}

	weekTopic := weeks.Topic(scheme.Content, req.Week)
	weekContent := weeks.Content(scheme.Content, req.Week)
	if weekContent == "" {
		ctxzap.Warn(ctx, "week section not found in scheme, using full scheme content",
			zap.Int("week", req.Week),
			zap.Strings("scheme_weeks", weeks.FromScheme(scheme.Content)),
		)
		weekContent = scheme.Content
	}

	prompt, err := renderPrompt(lessonPlanPrompt, lessonPlanPromptData{
		Subject:     scheme.Payload.Subject,
		GradeLevel:  scheme.Payload.GradeLevel,
		Week:        req.Week,
		WeekTopic:   weekTopic,
		Limitations: req.Limitations,
		WeekContent: weekContent,
		Context:     storedContext.Context,
		Country:     scheme.Payload.Country,
	})
	if err != nil {
		return nil, err
	}

	generated, err := uc.llmConnector.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate lesson plan: %w", err)
	}

	plan, err := uc.lessonPlanRepo.Create(ctx, entity.LessonPlan{
		ID:       uuid.New().String(),
		SchemeID: scheme.ID,
		Payload: entity.LessonPlanPayload{
			Subject:     scheme.Payload.Subject,
			GradeLevel:  scheme.Payload.GradeLevel,
			Topic:       weekTopic,
			Limitations: req.Limitations,
			Week:        req.Week,
		},
		Content:   generated,
		ContextID: scheme.ContextID,
		Week:      req.Week,
	})
	if err != nil {
		return nil, fmt.Errorf("persist lesson plan: %w", err)
	}

	ctxzap.Info(ctx, "lesson plan generated",
		zap.String("lesson_plan_id", plan.ID),
		zap.String("scheme_id", scheme.ID),
		zap.Int("week", plan.Week),
	)

	return &entity.GenerateLessonPlanResponse{
		SchemeID:     scheme.ID,
		LessonPlanID: plan.ID,
		Content:      plan.Content,
		ContextID:    storedContext.ID,
		Week:         plan.Week,
		Status:       statusSuccess,
	}, nil
}

// GetLessonPlan returns a stored lesson plan
func (uc *ContentUsecase) GetLessonPlan(ctx context.Context, id string) (*entity.LessonPlan, error) {
	return uc.lessonPlanRepo.Get(ctx, id)
}

// GenerateLessonNotes generates learner-facing notes from a lesson plan.
// The week always comes from the plan, never from the caller.
func (uc *ContentUsecase) GenerateLessonNotes(ctx context.Context, req *entity.GenerateLessonNotesRequest) (*entity.GenerateLessonNotesResponse, error) {
	if err := uc.validator.ValidateGenerateLessonNotes(req); err != nil {
		return nil, err
	}

	plan, err := uc.lessonPlanRepo.Get(ctx, req.LessonPlanID)
	if err != nil {
		return nil, err
	}
	if plan.SchemeID != req.SchemeID {
		return nil, fmt.Errorf("%w: lesson plan %s does not belong to scheme %s",
			entity.ErrInvalidParameter, req.LessonPlanID, req.SchemeID)
	}

	scheme, err := uc.schemeRepo.Get(ctx, plan.SchemeID)
	if err != nil {
		return nil, err
	}

	storedContext, err := uc.requireContext(ctx, scheme.ContextID)
	if err != nil {
		return nil, err
	}

	topic := req.Topic
	if topic == "" {
		topic = plan.Payload.Topic
	}
	if topic == "" {
		topic = weeks.Topic(scheme.Content, plan.Week)
	}

	weekContent := weeks.Content(scheme.Content, plan.Week)
	if weekContent == "" {
		weekContent = scheme.Content
	}

	prompt, err := renderPrompt(lessonNotesPrompt, lessonNotesPromptData{
		Subject:        scheme.Payload.Subject,
		GradeLevel:     scheme.Payload.GradeLevel,
		Week:           plan.Week,
		Topic:          topic,
		TeachingMethod: req.TeachingMethod,
		LessonPlan:     plan.Content,
		WeekContent:    weekContent,
		Context:        storedContext.Context,
		Country:        scheme.Payload.Country,
	})
	if err != nil {
		return nil, err
	}

	generated, err := uc.llmConnector.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate lesson notes: %w", err)
	}

	notes, err := uc.notesRepo.Create(ctx, entity.LessonNotes{
		ID:           uuid.New().String(),
		SchemeID:     scheme.ID,
		LessonPlanID: plan.ID,
		Payload: entity.LessonNotesPayload{
			TeachingMethod: req.TeachingMethod,
			Topic:          topic,
			Week:           plan.Week,
		},
		Content:   generated,
		ContextID: scheme.ContextID,
		Week:      plan.Week,
	})
	if err != nil {
		return nil, fmt.Errorf("persist lesson notes: %w", err)
	}

	ctxzap.Info(ctx, "lesson notes generated",
		zap.String("lesson_notes_id", notes.ID),
		zap.String("lesson_plan_id", plan.ID),
		zap.Int("week", notes.Week),
	)

	return &entity.GenerateLessonNotesResponse{
		SchemeID:      scheme.ID,
		LessonPlanID:  plan.ID,
		LessonNotesID: notes.ID,
		Content:       notes.Content,
		ContextID:     storedContext.ID,
		Week:          notes.Week,
		Status:        statusSuccess,
	}, nil
}

// GetLessonNotes returns stored lesson notes
func (uc *ContentUsecase) GetLessonNotes(ctx context.Context, id string) (*entity.LessonNotes, error) {
	return uc.notesRepo.Get(ctx, id)
}

// GenerateExam generates an exam over the selected weeks of a scheme,
// assessing whatever plans and notes exist for those weeks.
func (uc *ContentUsecase) GenerateExam(ctx context.Context, req *entity.GenerateExamRequest) (*entity.GenerateExamResponse, error) {
	if err := uc.validator.ValidateGenerateExam(req); err != nil {
		return nil, err
	}
	req.Normalize()

	selectedWeeks := dedupeWeeks(req.Weeks)

	scheme, err := uc.schemeRepo.Get(ctx, req.SchemeID)
	if err != nil {
		return nil, err
	}

	storedContext, err := uc.requireContext(ctx, scheme.ContextID)
	if err != nil {
		return nil, err
	}

	plans, err := uc.lessonPlanRepo.ListBySchemeAndWeeks(ctx, scheme.ID, selectedWeeks)
	if err != nil {
		return nil, err
	}

	notes, err := uc.notesRepo.ListBySchemeAndWeeks(ctx, scheme.ID, selectedWeeks)
	if err != nil {
		return nil, err
	}

	materials, topics := uc.collectExamMaterials(scheme, selectedWeeks, plans, notes)

	prompt, err := renderPrompt(examPrompt, examPromptData{
		Subject:       scheme.Payload.Subject,
		GradeLevel:    scheme.Payload.GradeLevel,
		Weeks:         joinWeeks(selectedWeeks),
		Topics:        strings.Join(topics, "; "),
		Duration:      req.ExamDuration,
		TotalMarks:    req.TotalMarks,
		QuestionTypes: req.QuestionTypes,
		NumQuestions:  req.NumQuestions,
		Focus:         req.AssessmentFocus,
		Materials:     materials,
		Country:       scheme.Payload.Country,
	})
	if err != nil {
		return nil, err
	}

	generated, err := uc.llmConnector.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate exam: %w", err)
	}

	exam := entity.Exam{
		ID:       uuid.New().String(),
		SchemeID: scheme.ID,
		Payload: entity.ExamPayload{
			WeeksCovered:    selectedWeeks,
			ExamDuration:    req.ExamDuration,
			TotalMarks:      req.TotalMarks,
			QuestionTypes:   req.QuestionTypes,
			NumQuestions:    req.NumQuestions,
			AssessmentFocus: req.AssessmentFocus,
			Country:         scheme.Payload.Country,
			MaterialsUsed: entity.ExamMaterials{
				LessonPlans: len(plans),
				LessonNotes: len(notes),
			},
		},
		Content:   generated,
		ContextID: scheme.ContextID,
	}
	if len(plans) > 0 {
		exam.LessonPlanID = &plans[0].ID
	}
	if len(notes) > 0 {
		exam.LessonNoteID = &notes[0].ID
	}

	created, err := uc.examRepo.Create(ctx, exam)
	if err != nil {
		return nil, fmt.Errorf("persist exam: %w", err)
	}

	ctxzap.Info(ctx, "exam generated",
		zap.String("exam_id", created.ID),
		zap.String("scheme_id", scheme.ID),
		zap.Ints("weeks", selectedWeeks),
		zap.String("context_id", storedContext.ID),
	)

	return &entity.GenerateExamResponse{
		ExamID:        created.ID,
		WeeksCovered:  created.Payload.WeeksCovered,
		Country:       created.Payload.Country,
		MaterialsUsed: created.Payload.MaterialsUsed,
		Content:       created.Content,
		Status:        statusSuccess,
	}, nil
}

// GetExam returns a stored exam
func (uc *ContentUsecase) GetExam(ctx context.Context, id string) (*entity.Exam, error) {
	return uc.examRepo.Get(ctx, id)
}

// ListExamsByScheme returns all exams generated for a scheme
func (uc *ContentUsecase) ListExamsByScheme(ctx context.Context, schemeID string) ([]*entity.Exam, error) {
	if _, err := uc.schemeRepo.Get(ctx, schemeID); err != nil {
		return nil, err
	}

	return uc.examRepo.ListByScheme(ctx, schemeID)
}

// UpdateExam applies a partial update; exams are the only mutable artifact
func (uc *ContentUsecase) UpdateExam(ctx context.Context, id string, req *entity.UpdateExamRequest) (*entity.Exam, error) {
	exam, err := uc.examRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		exam.Content = *req.Content
	}
	if req.ExamDuration != nil {
		exam.Payload.ExamDuration = *req.ExamDuration
	}
	if req.TotalMarks != nil {
		exam.Payload.TotalMarks = *req.TotalMarks
	}
	if req.AssessmentFocus != nil {
		exam.Payload.AssessmentFocus = *req.AssessmentFocus
	}

	updated, err := uc.examRepo.Update(ctx, *exam)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "exam updated", zap.String("exam_id", updated.ID))
	return updated, nil
}

// DeleteExam removes a stored exam
func (uc *ContentUsecase) DeleteExam(ctx context.Context, id string) error {
	if err := uc.examRepo.Delete(ctx, id); err != nil {
		return err
	}

	ctxzap.Info(ctx, "exam deleted", zap.String("exam_id", id))
	return nil
}

// requireContext enforces the grounding invariant: artifacts are only
// generated from a persisted retrieval context.
func (uc *ContentUsecase) requireContext(ctx context.Context, contextID *string) (*entity.CurriculumContext, error) {
	if contextID == nil || *contextID == "" {
		return nil, entity.ErrMissingContext
	}

	return uc.contextRepo.Get(ctx, *contextID)
}

// collectExamMaterials assembles the teaching material the exam assesses.
// Plans and notes for the selected weeks come first; weeks with neither fall
// back to the scheme's own week section.
func (uc *ContentUsecase) collectExamMaterials(
	scheme *entity.Scheme,
	selectedWeeks []int,
	plans []*entity.LessonPlan,
	notes []*entity.LessonNotes,
) (string, []string) {
	covered := make(map[int]bool, len(plans)+len(notes))

	var sections []string
	for _, plan := range plans {
		covered[plan.Week] = true
		sections = append(sections, fmt.Sprintf("Lesson plan, week %d:\n%s", plan.Week, plan.Content))
	}
	for _, n := range notes {
		covered[n.Week] = true
		sections = append(sections, fmt.Sprintf("Lesson notes, week %d:\n%s", n.Week, n.Content))
	}

	topics := make([]string, 0, len(selectedWeeks))
	for _, week := range selectedWeeks {
		topics = append(topics, weeks.Topic(scheme.Content, week))

		if !covered[week] {
			if section := weeks.Content(scheme.Content, week); section != "" {
				sections = append(sections, fmt.Sprintf("Scheme of work, week %d:\n%s", week, section))
			}
		}
	}

	if len(sections) == 0 {
		sections = append(sections, scheme.Content)
	}

	return strings.Join(sections, "\n\n"), topics
}

func dedupeWeeks(in []int) []int {
	seen := make(map[int]bool, len(in))
	out := make([]int, 0, len(in))
	for _, w := range in {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	sort.Ints(out)

	return out
}

func joinWeeks(weeks []int) string {
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = fmt.Sprintf("%d", w)
	}

	return strings.Join(parts, ", ")
}
