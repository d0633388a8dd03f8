package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduforge/curricula-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamRepository defines the interface for exam persistence
type ExamRepository interface {
	Create(ctx context.Context, exam entity.Exam) (*entity.Exam, error)
	Get(ctx context.Context, id string) (*entity.Exam, error)
	ListByScheme(ctx context.Context, schemeID string) ([]*entity.Exam, error)
	Update(ctx context.Context, exam entity.Exam) (*entity.Exam, error)
	Delete(ctx context.Context, id string) error
}

var _ ExamRepository = &ExamPostgres{}

// ExamPostgres implements ExamRepository using PostgreSQL
type ExamPostgres struct {
	db *pgxpool.Pool
}

func NewExamPostgres(db *pgxpool.Pool) *ExamPostgres {
	return &ExamPostgres{db: db}
}

func (r *ExamPostgres) Create(ctx context.Context, exam entity.Exam) (*entity.Exam, error) {
	id, err := pgUUID(exam.ID)
	if err != nil {
		return nil, err
	}

	schemeID, err := pgUUID(exam.SchemeID)
	if err != nil {
		return nil, err
	}

	planID, err := pgUUIDPtr(exam.LessonPlanID)
	if err != nil {
		return nil, err
	}

	noteID, err := pgUUIDPtr(exam.LessonNoteID)
	if err != nil {
		return nil, err
	}

	contextID, err := pgUUIDPtr(exam.ContextID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO exams (id, scheme_id, lesson_plan_id, lesson_note_id, payload, content, context_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, scheme_id, lesson_plan_id, lesson_note_id, payload, content, context_id, created_at, updated_at`,
		id, schemeID, planID, noteID, exam.Payload, exam.Content, contextID,
	)

	result, err := scanExam(row)
	if err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}

	return result, nil
}

func (r *ExamPostgres) Get(ctx context.Context, id string) (*entity.Exam, error) {
	examID, err := pgUUID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, scheme_id, lesson_plan_id, lesson_note_id, payload, content, context_id, created_at, updated_at
		FROM exams
		WHERE id = $1`,
		examID,
	)

	result, err := scanExam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrExamNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}

	return result, nil
}

func (r *ExamPostgres) ListByScheme(ctx context.Context, schemeID string) ([]*entity.Exam, error) {
	id, err := pgUUID(schemeID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, scheme_id, lesson_plan_id, lesson_note_id, payload, content, context_id, created_at, updated_at
		FROM exams
		WHERE scheme_id = $1
		ORDER BY created_at DESC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	defer rows.Close()

	var exams []*entity.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exam: %w", err)
		}
		exams = append(exams, exam)
	}

	return exams, rows.Err()
}

func (r *ExamPostgres) Update(ctx context.Context, exam entity.Exam) (*entity.Exam, error) {
	examID, err := pgUUID(exam.ID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		UPDATE exams
		SET payload = $2, content = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, scheme_id, lesson_plan_id, lesson_note_id, payload, content, context_id, created_at, updated_at`,
		examID, exam.Payload, exam.Content,
	)

	result, err := scanExam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrExamNotFound
		}
		return nil, fmt.Errorf("update exam: %w", err)
	}

	return result, nil
}

func (r *ExamPostgres) Delete(ctx context.Context, id string) error {
	examID, err := pgUUID(id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, examID)
	if err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrExamNotFound
	}

	return nil
}

func scanExam(row pgx.Row) (*entity.Exam, error) {
	var (
		id        pgtype.UUID
		schemeID  pgtype.UUID
		planID    pgtype.UUID
		noteID    pgtype.UUID
		exam      entity.Exam
		contextID pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &schemeID, &planID, &noteID, &exam.Payload, &exam.Content, &contextID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	exam.ID = uuidString(id)
	exam.SchemeID = uuidString(schemeID)
	exam.LessonPlanID = uuidStringPtr(planID)
	exam.LessonNoteID = uuidStringPtr(noteID)
	exam.ContextID = uuidStringPtr(contextID)
	exam.CreatedAt = createdAt.Time
	exam.UpdatedAt = timePtr(updatedAt)

	return &exam, nil
}
