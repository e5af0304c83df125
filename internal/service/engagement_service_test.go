package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/store"
)

type engagementFixture struct {
	store   *store.Store
	notifs  repository.NotificationRepository
	service *EngagementService
}

func newEngagementFixture(posts []models.Post, comments []models.Comment) *engagementFixture {
	st := store.New(0)
	st.Posts.Seed(posts)
	st.Comments.Seed(comments)

	notifRepo := repository.NewNotificationRepository(st.Notifications)
	return &engagementFixture{
		store:  st,
		notifs: notifRepo,
		service: NewEngagementService(
			repository.NewPostRepository(st.Posts),
			repository.NewCommentRepository(st.Comments),
			notifRepo,
		),
	}
}

func TestDoubleToggleRestoresPostState(t *testing.T) {
	f := newEngagementFixture([]models.Post{{ID: 1, UserID: 2, LikesCount: 3}}, nil)
	ctx := context.Background()

	liked, err := f.service.TogglePostLike(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, 4, liked.LikesCount)

	unliked, err := f.service.TogglePostLike(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, unliked.IsLiked)
	assert.Equal(t, 3, unliked.LikesCount)
}

func TestTogglePostLikeNotifiesAuthorOnce(t *testing.T) {
	f := newEngagementFixture([]models.Post{{ID: 1, UserID: 2}}, nil)
	ctx := context.Background()

	_, err := f.service.TogglePostLike(ctx, 1, 1)
	require.NoError(t, err)

	notifs, err := f.notifs.GetByUserID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationTypeLike, notifs[0].Type)
	require.NotNil(t, notifs[0].PostID)
	assert.Equal(t, uint(1), *notifs[0].PostID)

	// Unliking does not notify.
	_, err = f.service.TogglePostLike(ctx, 1, 1)
	require.NoError(t, err)

	notifs, err = f.notifs.GetByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, notifs, 1)
}

func TestLikingOwnPostDoesNotNotify(t *testing.T) {
	f := newEngagementFixture([]models.Post{{ID: 1, UserID: 1}}, nil)
	ctx := context.Background()

	_, err := f.service.TogglePostLike(ctx, 1, 1)
	require.NoError(t, err)

	notifs, err := f.notifs.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, notifs)
}

func TestDoubleToggleRestoresCommentState(t *testing.T) {
	f := newEngagementFixture(nil, []models.Comment{{ID: 1, PostID: 10, LikesCount: 1}})
	ctx := context.Background()

	liked, err := f.service.ToggleCommentLike(ctx, 1)
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, 2, liked.LikesCount)

	unliked, err := f.service.ToggleCommentLike(ctx, 1)
	require.NoError(t, err)
	assert.False(t, unliked.IsLiked)
	assert.Equal(t, 1, unliked.LikesCount)
}

func TestIncrementCommentCount(t *testing.T) {
	f := newEngagementFixture([]models.Post{{ID: 1, UserID: 1, CommentsCount: 2}}, nil)

	post, err := f.service.IncrementCommentCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, post.CommentsCount)
}
