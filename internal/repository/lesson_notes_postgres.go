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

// LessonNotesRepository defines the interface for lesson notes persistence
type LessonNotesRepository interface {
	Create(ctx context.Context, notes entity.LessonNotes) (*entity.LessonNotes, error)
	Get(ctx context.Context, id string) (*entity.LessonNotes, error)
	ListBySchemeAndWeeks(ctx context.Context, schemeID string, weeks []int) ([]*entity.LessonNotes, error)
}

var _ LessonNotesRepository = &LessonNotesPostgres{}

// LessonNotesPostgres implements LessonNotesRepository using PostgreSQL
type LessonNotesPostgres struct {
	db *pgxpool.Pool
}

func NewLessonNotesPostgres(db *pgxpool.Pool) *LessonNotesPostgres {
	return &LessonNotesPostgres{db: db}
}

func (r *LessonNotesPostgres) Create(ctx context.Context, notes entity.LessonNotes) (*entity.LessonNotes, error) {
	id, err := pgUUID(notes.ID)
	if err != nil {
		return nil, err
	}

	schemeID, err := pgUUID(notes.SchemeID)
	if err != nil {
		return nil, err
	}

	planID, err := pgUUID(notes.LessonPlanID)
	if err != nil {
		return nil, err
	}

	contextID, err := pgUUIDPtr(notes.ContextID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO lesson_notes (id, scheme_id, lesson_plan_id, payload, content, context_id, week)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, scheme_id, lesson_plan_id, payload, content, context_id, week, created_at`,
		id, schemeID, planID, notes.Payload, notes.Content, contextID, notes.Week,
	)

	result, err := scanLessonNotes(row)
	if err != nil {
		return nil, fmt.Errorf("create lesson notes: %w", err)
	}

	return result, nil
}

func (r *LessonNotesPostgres) Get(ctx context.Context, id string) (*entity.LessonNotes, error) {
	notesID, err := pgUUID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, scheme_id, lesson_plan_id, payload, content, context_id, week, created_at
		FROM lesson_notes
		WHERE id = $1`,
		notesID,
	)

	result, err := scanLessonNotes(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrLessonNotesNotFound
		}
		return nil, fmt.Errorf("get lesson notes: %w", err)
	}

	return result, nil
}

func (r *LessonNotesPostgres) ListBySchemeAndWeeks(ctx context.Context, schemeID string, weeks []int) ([]*entity.LessonNotes, error) {
	id, err := pgUUID(schemeID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, scheme_id, lesson_plan_id, payload, content, context_id, week, created_at
		FROM lesson_notes
		WHERE scheme_id = $1 AND week = ANY($2)
		ORDER BY week, created_at`,
		id, weeks,
	)
	if err != nil {
		return nil, fmt.Errorf("list lesson notes: %w", err)
	}
	defer rows.Close()

	var notes []*entity.LessonNotes
	for rows.Next() {
		n, err := scanLessonNotes(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson notes: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func scanLessonNotes(row pgx.Row) (*entity.LessonNotes, error) {
	var (
		id        pgtype.UUID
		schemeID  pgtype.UUID
		planID    pgtype.UUID
		notes     entity.LessonNotes
		contextID pgtype.UUID
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &schemeID, &planID, &notes.Payload, &notes.Content, &contextID, &notes.Week, &createdAt)
	if err != nil {
		return nil, err
	}

	notes.ID = uuidString(id)
	notes.SchemeID = uuidString(schemeID)
	notes.LessonPlanID = uuidString(planID)
	notes.ContextID = uuidStringPtr(contextID)
	notes.CreatedAt = createdAt.Time

	return &notes, nil
}
