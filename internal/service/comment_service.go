package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
)

const maxCommentContentLen = 1000

// CommentService manages comments and keeps each post's comment counter
// equal to the number of live comments referencing it.
type CommentService struct {
	comments      repository.CommentRepository
	posts         repository.PostRepository
	notifications repository.NotificationRepository

	// mu serializes comment+counter mutation so the counter cannot drift
	// from the live comment count under concurrent writes.
	mu sync.Mutex
}

// CreateCommentInput carries the fields for a new comment.
type CreateCommentInput struct {
	PostID  uint
	UserID  uint
	Content string
}

// NewCommentService creates a new comment service
func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	notifications repository.NotificationRepository,
) *CommentService {
	return &CommentService{
		comments:      comments,
		posts:         posts,
		notifications: notifications,
	}
}

// ListForPost returns the post's comments, oldest first. The post must exist.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.GetByPostID(ctx, postID)
}

// CreateComment validates and stores a new comment, bumping the owning
// post's comment counter in the same critical section. The comment's
// author is notified unless they commented on their own post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return models.Comment{}, models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentContentLen {
		return models.Comment{}, models.NewValidationError("Content too long (max 1000 characters)")
	}

	post, err := s.posts.GetByID(ctx, in.PostID)
	if err != nil {
		return models.Comment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment, err := s.comments.Create(ctx, models.Comment{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: content,
	})
	if err != nil {
		return models.Comment{}, err
	}

	if _, err := s.posts.AdjustCommentCount(ctx, in.PostID, 1); err != nil {
		return models.Comment{}, err
	}
	observability.CountEngagementEvent("comment_create")

	if post.UserID != in.UserID {
		s.notify(ctx, models.Notification{
			UserID:  post.UserID,
			ActorID: in.UserID,
			Type:    models.NotificationTypeComment,
			PostID:  &post.ID,
		})
	}

	return comment, nil
}

// DeleteComment removes the comment and decrements the owning post's
// comment counter. A missing post is tolerated: the comment may outlive
// a deleted post.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, err := s.comments.Delete(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}

	if _, err := s.posts.AdjustCommentCount(ctx, comment.PostID, -1); err != nil {
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
			return models.Comment{}, err
		}
	}
	observability.CountEngagementEvent("comment_delete")

	return comment, nil
}

func (s *CommentService) notify(ctx context.Context, n models.Notification) {
	if _, err := s.notifications.Create(ctx, n); err != nil {
		observability.GlobalLogger.WarnContext(ctx, "notification fanout failed",
			"type", string(n.Type), "user_id", n.UserID, "error", err)
		return
	}
	observability.CountNotificationCreated(string(n.Type))
}
