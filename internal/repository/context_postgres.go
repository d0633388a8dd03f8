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

// ContextRepository defines the interface for retrieval context persistence
type ContextRepository interface {
	Create(ctx context.Context, rc entity.CurriculumContext) (*entity.CurriculumContext, error)
	Get(ctx context.Context, id string) (*entity.CurriculumContext, error)
}

var _ ContextRepository = &ContextPostgres{}

// ContextPostgres implements ContextRepository using PostgreSQL
type ContextPostgres struct {
	db *pgxpool.Pool
}

func NewContextPostgres(db *pgxpool.Pool) *ContextPostgres {
	return &ContextPostgres{db: db}
}

func (r *ContextPostgres) Create(ctx context.Context, rc entity.CurriculumContext) (*entity.CurriculumContext, error) {
	id, err := pgUUID(rc.ID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO curriculum_contexts (id, subject, grade_level, topic, country, context)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, subject, grade_level, topic, country, context, created_at`,
		id, rc.Subject, rc.GradeLevel, rc.Topic, rc.Country, rc.Context,
	)

	result, err := scanContext(row)
	if err != nil {
		return nil, fmt.Errorf("create curriculum context: %w", err)
	}

	return result, nil
}

func (r *ContextPostgres) Get(ctx context.Context, id string) (*entity.CurriculumContext, error) {
	contextID, err := pgUUID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, subject, grade_level, topic, country, context, created_at
		FROM curriculum_contexts
		WHERE id = $1`,
		contextID,
	)

	result, err := scanContext(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrContextNotFound
		}
		return nil, fmt.Errorf("get curriculum context: %w", err)
	}

	return result, nil
}

func scanContext(row pgx.Row) (*entity.CurriculumContext, error) {
	var (
		id        pgtype.UUID
		rc        entity.CurriculumContext
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &rc.Subject, &rc.GradeLevel, &rc.Topic, &rc.Country, &rc.Context, &createdAt)
	if err != nil {
		return nil, err
	}

	rc.ID = uuidString(id)
	rc.CreatedAt = createdAt.Time

	return &rc, nil
}
