package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/eduforge/curricula-backend/internal/entity"
)

// pgUUID parses a string id into a pgtype.UUID. Malformed ids are reported as
// entity.ErrInvalidParameter so they surface as client errors, not server faults.
func pgUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("%w: malformed id %q", entity.ErrInvalidParameter, id)
	}

	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func pgUUIDPtr(id *string) (pgtype.UUID, error) {
	if id == nil || *id == "" {
		return pgtype.UUID{}, nil
	}

	return pgUUID(*id)
}

func uuidString(id pgtype.UUID) string {
	return uuid.UUID(id.Bytes).String()
}

func uuidStringPtr(id pgtype.UUID) *string {
	if !id.Valid {
		return nil
	}

	s := uuid.UUID(id.Bytes).String()
	return &s
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}

	t := ts.Time
	return &t
}
