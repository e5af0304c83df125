package viewstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models"
)

func TestMutationCommitAdoptsAuthoritativeValue(t *testing.T) {
	current := models.Post{ID: 1, LikesCount: 3, IsLiked: false}
	optimistic := models.Post{ID: 1, LikesCount: 4, IsLiked: true}

	m := Begin(current, optimistic)
	assert.Equal(t, optimistic, m.Value())
	assert.False(t, m.Settled())

	authoritative := models.Post{ID: 1, LikesCount: 7, IsLiked: true}
	got := m.Commit(authoritative)
	assert.Equal(t, authoritative, got)
	assert.True(t, m.Settled())

	// A second settle keeps the committed value.
	assert.Equal(t, authoritative, m.Rollback())
}

func TestMutationRollbackRestoresSnapshot(t *testing.T) {
	current := models.Post{ID: 1, LikesCount: 3}
	optimistic := models.Post{ID: 1, LikesCount: 4, IsLiked: true}

	m := Begin(current, optimistic)
	got := m.Rollback()
	assert.Equal(t, current, got)
	assert.True(t, m.Settled())

	// Commit after rollback is a no-op.
	assert.Equal(t, current, m.Commit(optimistic))
}

func TestDoCommitsOnSuccess(t *testing.T) {
	current := 3
	authoritative := 7

	got, err := Do(context.Background(), current, 4, func(context.Context) (int, error) {
		return authoritative, nil
	})
	require.NoError(t, err)
	assert.Equal(t, authoritative, got)
}

func TestDoRollsBackOnFailure(t *testing.T) {
	opErr := errors.New("backend rejected the write")

	got, err := Do(context.Background(), 3, 4, func(context.Context) (int, error) {
		return 0, opErr
	})
	assert.ErrorIs(t, err, opErr)
	assert.Equal(t, 3, got)
}
