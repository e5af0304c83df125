package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
)

// EngagementService manages like toggles and comment counters.
//
// Likes are a single viewer-shared flag per post and comment, not a
// per-viewer ledger: two consecutive toggles return the record to its
// original state.
type EngagementService struct {
	posts         repository.PostRepository
	comments      repository.CommentRepository
	notifications repository.NotificationRepository
}

// NewEngagementService creates a new engagement service
func NewEngagementService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	notifications repository.NotificationRepository,
) *EngagementService {
	return &EngagementService{
		posts:         posts,
		comments:      comments,
		notifications: notifications,
	}
}

// TogglePostLike flips the post's like flag and adjusts its like counter
// in the same direction. Liking someone else's post notifies the author.
func (s *EngagementService) TogglePostLike(ctx context.Context, postID, viewerID uint) (models.Post, error) {
	post, err := s.posts.ToggleLike(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	observability.CountEngagementEvent("post_like_toggle")
	if post.IsLiked && post.UserID != viewerID {
		s.notify(ctx, models.Notification{
			UserID:  post.UserID,
			ActorID: viewerID,
			Type:    models.NotificationTypeLike,
			PostID:  &post.ID,
		})
	}

	return post, nil
}

// ToggleCommentLike flips the comment's like flag and adjusts its counter,
// mirroring post like semantics.
func (s *EngagementService) ToggleCommentLike(ctx context.Context, commentID uint) (models.Comment, error) {
	comment, err := s.comments.ToggleLike(ctx, commentID)
	if err != nil {
		return models.Comment{}, err
	}
	observability.CountEngagementEvent("comment_like_toggle")
	return comment, nil
}

// IncrementCommentCount bumps the post's comment counter by one.
func (s *EngagementService) IncrementCommentCount(ctx context.Context, postID uint) (models.Post, error) {
	post, err := s.posts.AdjustCommentCount(ctx, postID, 1)
	if err != nil {
		return models.Post{}, err
	}
	observability.CountEngagementEvent("comment_count_increment")
	return post, nil
}

func (s *EngagementService) notify(ctx context.Context, n models.Notification) {
	if _, err := s.notifications.Create(ctx, n); err != nil {
		observability.GlobalLogger.WarnContext(ctx, "notification fanout failed",
			"type", string(n.Type), "user_id", n.UserID, "error", err)
		return
	}
	observability.CountNotificationCreated(string(n.Type))
}
