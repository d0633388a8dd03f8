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

// LessonPlanRepository defines the interface for lesson plan persistence
type LessonPlanRepository interface {
	Create(ctx context.Context, plan entity.LessonPlan) (*entity.LessonPlan, error)
	Get(ctx context.Context, id string) (*entity.LessonPlan, error)
	ListBySchemeAndWeeks(ctx context.Context, schemeID string, weeks []int) ([]*entity.LessonPlan, error)
}

var _ LessonPlanRepository = &LessonPlanPostgres{}

// LessonPlanPostgres implements LessonPlanRepository using PostgreSQL
type LessonPlanPostgres struct {
	db *pgxpool.Pool
}

func NewLessonPlanPostgres(db *pgxpool.Pool) *LessonPlanPostgres {
	return &LessonPlanPostgres{db: db}
}

func (r *LessonPlanPostgres) Create(ctx context.Context, plan entity.LessonPlan) (*entity.LessonPlan, error) {
	id, err := pgUUID(plan.ID)
	if err != nil {
		return nil, err
	}

	schemeID, err := pgUUID(plan.SchemeID)
	if err != nil {
		return nil, err
	}

	contextID, err := pgUUIDPtr(plan.ContextID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO lesson_plans (id, scheme_id, payload, content, context_id, week)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, scheme_id, payload, content, context_id, week, created_at`,
		id, schemeID, plan.Payload, plan.Content, contextID, plan.Week,
	)

	result, err := scanLessonPlan(row)
	if err != nil {
		return nil, fmt.Errorf("create lesson plan: %w", err)
	}

	return result, nil
}

func (r *LessonPlanPostgres) Get(ctx context.Context, id string) (*entity.LessonPlan, error) {
	planID, err := pgUUID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, scheme_id, payload, content, context_id, week, created_at
		FROM lesson_plans
		WHERE id = $1`,
		planID,
	)

	result, err := scanLessonPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrLessonPlanNotFound
		}
		return nil, fmt.Errorf("get lesson plan: %w", err)
	}

	return result, nil
}

func (r *LessonPlanPostgres) ListBySchemeAndWeeks(ctx context.Context, schemeID string, weeks []int) ([]*entity.LessonPlan, error) {
	id, err := pgUUID(schemeID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, scheme_id, payload, content, context_id, week, created_at
		FROM lesson_plans
		WHERE scheme_id = $1 AND week = ANY($2)
		ORDER BY week, created_at`,
		id, weeks,
	)
	if err != nil {
		return nil, fmt.Errorf("list lesson plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.LessonPlan
	for rows.Next() {
		plan, err := scanLessonPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson plan: %w", err)
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func scanLessonPlan(row pgx.Row) (*entity.LessonPlan, error) {
	var (
		id        pgtype.UUID
		schemeID  pgtype.UUID
		plan      entity.LessonPlan
		contextID pgtype.UUID
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &schemeID, &plan.Payload, &plan.Content, &contextID, &plan.Week, &createdAt)
	if err != nil {
		return nil, err
	}

	plan.ID = uuidString(id)
	plan.SchemeID = uuidString(schemeID)
	plan.ContextID = uuidStringPtr(contextID)
	plan.CreatedAt = createdAt.Time

	return &plan, nil
}
