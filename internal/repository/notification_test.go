package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models"
	"pulse/internal/store"
)

func newNotificationRepo(items ...models.Notification) NotificationRepository {
	st := store.New(0)
	st.Notifications.Seed(items)
	return NewNotificationRepository(st.Notifications)
}

func TestGetByUserIDOrdersNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newNotificationRepo(
		models.Notification{ID: 1, UserID: 1, CreatedAt: base},
		models.Notification{ID: 2, UserID: 1, CreatedAt: base.Add(time.Hour)},
		models.Notification{ID: 3, UserID: 2, CreatedAt: base.Add(2 * time.Hour)},
	)

	items, err := repo.GetByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(2), items[0].ID)
	assert.Equal(t, uint(1), items[1].ID)
}

func TestNotificationCreateStartsUnread(t *testing.T) {
	repo := newNotificationRepo()

	created, err := repo.Create(context.Background(), models.Notification{
		UserID:  1,
		ActorID: 2,
		Type:    models.NotificationTypeFollow,
		Read:    true,
	})
	require.NoError(t, err)
	assert.False(t, created.Read)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestMarkAllReadOnlyTouchesOwner(t *testing.T) {
	repo := newNotificationRepo(
		models.Notification{ID: 1, UserID: 1},
		models.Notification{ID: 2, UserID: 1},
		models.Notification{ID: 3, UserID: 2},
	)
	ctx := context.Background()

	updated, err := repo.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	n, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.CountUnread(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
