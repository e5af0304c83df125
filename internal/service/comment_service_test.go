package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/store"
)

type commentFixture struct {
	store    *store.Store
	posts    repository.PostRepository
	comments repository.CommentRepository
	notifs   repository.NotificationRepository
	service  *CommentService
}

func newCommentFixture(posts ...models.Post) *commentFixture {
	st := store.New(0)
	st.Posts.Seed(posts)

	postRepo := repository.NewPostRepository(st.Posts)
	commentRepo := repository.NewCommentRepository(st.Comments)
	notifRepo := repository.NewNotificationRepository(st.Notifications)

	return &commentFixture{
		store:    st,
		posts:    postRepo,
		comments: commentRepo,
		notifs:   notifRepo,
		service:  NewCommentService(commentRepo, postRepo, notifRepo),
	}
}

func TestCreateCommentBumpsPostCounter(t *testing.T) {
	f := newCommentFixture(models.Post{ID: 1, UserID: 2})
	ctx := context.Background()

	comment, err := f.service.CreateComment(ctx, CreateCommentInput{
		PostID:  1,
		UserID:  1,
		Content: "  nice post  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)

	post, err := f.posts.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, post.CommentsCount)
}

func TestCreateCommentValidation(t *testing.T) {
	f := newCommentFixture(models.Post{ID: 1, UserID: 2})
	ctx := context.Background()

	t.Run("blank content", func(t *testing.T) {
		_, err := f.service.CreateComment(ctx, CreateCommentInput{PostID: 1, UserID: 1, Content: "   "})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeValidation, appErr.Code)
		assert.Equal(t, "Content is required", appErr.Message)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := f.service.CreateComment(ctx, CreateCommentInput{
			PostID:  1,
			UserID:  1,
			Content: strings.Repeat("x", maxCommentContentLen+1),
		})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := f.service.CreateComment(ctx, CreateCommentInput{PostID: 42, UserID: 1, Content: "hi"})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestCreateCommentNotifiesPostAuthor(t *testing.T) {
	f := newCommentFixture(models.Post{ID: 1, UserID: 2})
	ctx := context.Background()

	_, err := f.service.CreateComment(ctx, CreateCommentInput{PostID: 1, UserID: 1, Content: "hi"})
	require.NoError(t, err)

	notifs, err := f.notifs.GetByUserID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationTypeComment, notifs[0].Type)

	// Commenting on your own post stays silent.
	_, err = f.service.CreateComment(ctx, CreateCommentInput{PostID: 1, UserID: 2, Content: "thanks"})
	require.NoError(t, err)

	notifs, err = f.notifs.GetByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, notifs, 1)
}

func TestDeleteCommentDecrementsPostCounter(t *testing.T) {
	f := newCommentFixture(models.Post{ID: 1, UserID: 2})
	ctx := context.Background()

	comment, err := f.service.CreateComment(ctx, CreateCommentInput{PostID: 1, UserID: 1, Content: "hi"})
	require.NoError(t, err)

	_, err = f.service.DeleteComment(ctx, comment.ID)
	require.NoError(t, err)

	post, err := f.posts.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, post.CommentsCount)
}

func TestDeleteCommentToleratesMissingPost(t *testing.T) {
	f := newCommentFixture(models.Post{ID: 1, UserID: 2})
	ctx := context.Background()

	comment, err := f.service.CreateComment(ctx, CreateCommentInput{PostID: 1, UserID: 1, Content: "hi"})
	require.NoError(t, err)

	_, err = f.posts.Delete(ctx, 1)
	require.NoError(t, err)

	deleted, err := f.service.DeleteComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.ID, deleted.ID)
}

func TestConcurrentCommentsKeepCounterLive(t *testing.T) {
	f := newCommentFixture(models.Post{ID: 1, UserID: 2})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.service.CreateComment(ctx, CreateCommentInput{PostID: 1, UserID: 1, Content: "hi"})
		}()
	}
	wg.Wait()

	post, err := f.posts.GetByID(ctx, 1)
	require.NoError(t, err)

	live, err := f.comments.CountByPostID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, live, post.CommentsCount)
	assert.Equal(t, 25, post.CommentsCount)
}
