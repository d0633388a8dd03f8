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

// SchemeRepository defines the interface for scheme of work persistence
type SchemeRepository interface {
	Create(ctx context.Context, scheme entity.Scheme) (*entity.Scheme, error)
	Get(ctx context.Context, id string) (*entity.Scheme, error)
	Delete(ctx context.Context, id string) error
}

var _ SchemeRepository = &SchemePostgres{}

// SchemePostgres implements SchemeRepository using PostgreSQL
type SchemePostgres struct {
	db *pgxpool.Pool
}

func NewSchemePostgres(db *pgxpool.Pool) *SchemePostgres {
	return &SchemePostgres{db: db}
}

func (r *SchemePostgres) Create(ctx context.Context, scheme entity.Scheme) (*entity.Scheme, error) {
	id, err := pgUUID(scheme.ID)
	if err != nil {
		return nil, err
	}

	contextID, err := pgUUIDPtr(scheme.ContextID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO schemes (id, payload, content, context_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, payload, content, context_id, created_at`,
		id, scheme.Payload, scheme.Content, contextID,
	)

	result, err := scanScheme(row)
	if err != nil {
		return nil, fmt.Errorf("create scheme: %w", err)
	}

	return result, nil
}

func (r *SchemePostgres) Get(ctx context.Context, id string) (*entity.Scheme, error) {
	schemeID, err := pgUUID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, payload, content, context_id, created_at
		FROM schemes
		WHERE id = $1`,
		schemeID,
	)

	result, err := scanScheme(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSchemeNotFound
		}
		return nil, fmt.Errorf("get scheme: %w", err)
	}

	return result, nil
}

func (r *SchemePostgres) Delete(ctx context.Context, id string) error {
	schemeID, err := pgUUID(id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM schemes WHERE id = $1`, schemeID)
	if err != nil {
		return fmt.Errorf("delete scheme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrSchemeNotFound
	}

	return nil
}

func scanScheme(row pgx.Row) (*entity.Scheme, error) {
	var (
		id        pgtype.UUID
		scheme    entity.Scheme
		contextID pgtype.UUID
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &scheme.Payload, &scheme.Content, &contextID, &createdAt)
	if err != nil {
		return nil, err
	}

	scheme.ID = uuidString(id)
	scheme.ContextID = uuidStringPtr(contextID)
	scheme.CreatedAt = createdAt.Time

	return &scheme, nil
}
