package validator

import (
	"fmt"

	"github.com/eduforge/curricula-backend/internal/entity"
)

// Validator validates incoming API requests
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateScheme validates a scheme of work generation request
func (v *Validator) ValidateGenerateScheme(req *entity.GenerateSchemeRequest) error {
	if req.Subject == "" {
		return fmt.Errorf("%w: subject", entity.ErrMissingField)
	}
	if req.GradeLevel == "" {
		return fmt.Errorf("%w: grade_level", entity.ErrMissingField)
	}
	if req.Topic == "" {
		return fmt.Errorf("%w: topic", entity.ErrMissingField)
	}
	if req.Country == "" {
		return fmt.Errorf("%w: country", entity.ErrMissingField)
	}

	return nil
}

// ValidateGenerateLessonPlan validates a lesson plan generation request
func (v *Validator) ValidateGenerateLessonPlan(req *entity.GenerateLessonPlanRequest) error {
	if req.SchemeID == "" {
		return fmt.Errorf("%w: scheme_of_work_id", entity.ErrMissingField)
	}
	if req.Week < 1 {
		return fmt.Errorf("%w: week must be a positive number, got %d", entity.ErrInvalidParameter, req.Week)
	}

	return nil
}

// ValidateGenerateLessonNotes validates a lesson notes generation request
func (v *Validator) ValidateGenerateLessonNotes(req *entity.GenerateLessonNotesRequest) error {
	if req.SchemeID == "" {
		return fmt.Errorf("%w: scheme_of_work_id", entity.ErrMissingField)
	}
	if req.LessonPlanID == "" {
		return fmt.Errorf("%w: lesson_plan_id", entity.ErrMissingField)
	}

	return nil
}

// ValidateGenerateExam validates an exam generation request
func (v *Validator) ValidateGenerateExam(req *entity.GenerateExamRequest) error {
	if req.SchemeID == "" {
		return fmt.Errorf("%w: scheme_of_work_id", entity.ErrMissingField)
	}
	if len(req.Weeks) == 0 {
		return fmt.Errorf("%w: weeks", entity.ErrMissingField)
	}
	for _, week := range req.Weeks {
		if week < 1 {
			return fmt.Errorf("%w: weeks must be positive numbers, got %d", entity.ErrInvalidParameter, week)
		}
	}

	return nil
}

// ValidateSearch validates a retrieval search request
func (v *Validator) ValidateSearch(req *entity.SearchRequest) error {
	if err := v.validateRetrievalQuery(&req.RetrievalQuery); err != nil {
		return err
	}
	if req.TopK < 0 {
		return fmt.Errorf("%w: top_k must not be negative, got %d", entity.ErrInvalidParameter, req.TopK)
	}

	return nil
}

func (v *Validator) validateRetrievalQuery(q *entity.RetrievalQuery) error {
	if q.Subject == "" {
		return fmt.Errorf("%w: subject", entity.ErrMissingField)
	}
	if q.GradeLevel == "" {
		return fmt.Errorf("%w: grade_level", entity.ErrMissingField)
	}
	if q.Topic == "" {
		return fmt.Errorf("%w: topic", entity.ErrMissingField)
	}
	if q.Country == "" {
		return fmt.Errorf("%w: country", entity.ErrMissingField)
	}

	return nil
}

// ValidateIngestChunks validates a chunk ingestion request
func (v *Validator) ValidateIngestChunks(req *entity.IngestChunksRequest) error {
	if req.Country == "" {
		return fmt.Errorf("%w: country", entity.ErrMissingField)
	}
	if req.Subject == "" {
		return fmt.Errorf("%w: subject", entity.ErrMissingField)
	}
	if req.GradeLevel == "" {
		return fmt.Errorf("%w: grade_level", entity.ErrMissingField)
	}
	if len(req.Chunks) == 0 {
		return fmt.Errorf("%w: chunks", entity.ErrMissingField)
	}
	for i, chunk := range req.Chunks {
		if chunk == "" {
			return fmt.Errorf("%w: chunks[%d] is empty", entity.ErrInvalidParameter, i)
		}
	}
	if len(req.Pages) > 0 && len(req.Pages) != len(req.Chunks) {
		return fmt.Errorf("%w: pages must align with chunks", entity.ErrInvalidParameter)
	}

	return nil
}
