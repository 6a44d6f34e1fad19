package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	owner := uuid.NewString()

	j := &Job{ID: uuid.NewString(), EmployerID: owner, Title: "A", Tags: pq.StringArray{"x"}, Applications: 3, CreatedAt: base}
	require.NoError(t, s.Create(ctx, j))
	j.Tags[0] = "mutated"

	got, err := s.Find(ctx, owner, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Tags[0])

	got.Title = "B"
	got.Applications = 99
	got.CreatedAt = base.Add(1e9)
	require.NoError(t, s.Update(ctx, got))

	again, err := s.Find(ctx, owner, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", again.Title)
	assert.Equal(t, 3, again.Applications, "applications is create-only")
	assert.Equal(t, base, again.CreatedAt)
}

func TestMemoryStoreScopesByEmployer(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	owner, other := uuid.NewString(), uuid.NewString()

	j := &Job{ID: uuid.NewString(), EmployerID: owner, Title: "A"}
	require.NoError(t, s.Create(ctx, j))

	_, err := s.Find(ctx, other, j.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	foreign := *j
	foreign.EmployerID = other
	assert.ErrorIs(t, s.Update(ctx, &foreign), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, other, j.ID), ErrNotFound)

	rows, total, err := s.List(ctx, Query{EmployerID: other, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, total)
}

func TestMemoryStoreHonoursContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Create(ctx, &Job{ID: uuid.NewString()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStoreRejectsNegativeOffset(t *testing.T) {
	s := NewMemoryStore()
	_, _, err := s.List(context.Background(), Query{EmployerID: uuid.NewString(), Offset: -10, Limit: 10})
	assert.ErrorIs(t, err, ErrOffset)
}
