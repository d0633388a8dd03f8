package content

import (
	"context"

	"github.com/eduforge/curricula-backend/internal/entity"
)

type ContentUsecase interface {
	GenerateScheme(ctx context.Context, req *entity.GenerateSchemeRequest) (*entity.GenerateSchemeResponse, error)
	GetScheme(ctx context.Context, id string) (*entity.Scheme, error)
	GetContext(ctx context.Context, id string) (*entity.CurriculumContext, error)
	GenerateLessonPlan(ctx context.Context, req *entity.GenerateLessonPlanRequest) (*entity.GenerateLessonPlanResponse, error)
	GetLessonPlan(ctx context.Context, id string) (*entity.LessonPlan, error)
	GenerateLessonNotes(ctx context.Context, req *entity.GenerateLessonNotesRequest) (*entity.GenerateLessonNotesResponse, error)
	GetLessonNotes(ctx context.Context, id string) (*entity.LessonNotes, error)
	GenerateExam(ctx context.Context, req *entity.GenerateExamRequest) (*entity.GenerateExamResponse, error)
	GetExam(ctx context.Context, id string) (*entity.Exam, error)
	ListExamsByScheme(ctx context.Context, schemeID string) ([]*entity.Exam, error)
	UpdateExam(ctx context.Context, id string, req *entity.UpdateExamRequest) (*entity.Exam, error)
	DeleteExam(ctx context.Context, id string) error
}
