package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforge/curricula-backend/internal/entity"
)

func TestPgUUIDRoundTrip(t *testing.T) {
	id := uuid.NewString()

	converted, err := pgUUID(id)
	require.NoError(t, err)
	assert.True(t, converted.Valid)
	assert.Equal(t, id, uuidString(converted))
}

// Malformed ids must surface as a client-side parameter error, not as an
// opaque server fault.
func TestPgUUIDMalformed(t *testing.T) {
	_, err := pgUUID("not-a-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestPgUUIDPtr(t *testing.T) {
	converted, err := pgUUIDPtr(nil)
	require.NoError(t, err)
	assert.False(t, converted.Valid)
	assert.Nil(t, uuidStringPtr(converted))

	empty := ""
	converted, err = pgUUIDPtr(&empty)
	require.NoError(t, err)
	assert.False(t, converted.Valid)

	id := uuid.NewString()
	converted, err = pgUUIDPtr(&id)
	require.NoError(t, err)
	require.True(t, converted.Valid)
	assert.Equal(t, id, *uuidStringPtr(converted))
}
