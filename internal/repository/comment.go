package repository

import (
	"context"
	"sort"
	"time"

	"pulse/internal/models"
	"pulse/internal/store"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	GetByID(ctx context.Context, id uint) (models.Comment, error)
	GetByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
	Create(ctx context.Context, comment models.Comment) (models.Comment, error)
	Update(ctx context.Context, id uint, mutate func(*models.Comment)) (models.Comment, error)
	Delete(ctx context.Context, id uint) (models.Comment, error)
	ToggleLike(ctx context.Context, id uint) (models.Comment, error)
	CountByPostID(ctx context.Context, postID uint) (int, error)
}

// commentRepository implements CommentRepository
type commentRepository struct {
	comments *store.Collection[models.Comment]
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(comments *store.Collection[models.Comment]) CommentRepository {
	return &commentRepository{comments: comments}
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (models.Comment, error) {
	comment, err := r.comments.Get(ctx, id)
	if err != nil {
		return models.Comment{}, translateNotFound(err, "Comment", id)
	}
	return comment, nil
}

// GetByPostID returns the post's comments, oldest first.
func (r *commentRepository) GetByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	comments, err := r.comments.Find(ctx, func(c models.Comment) bool {
		return c.PostID == postID
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

// Create stores a new comment with a fresh creation timestamp, a zeroed
// like counter, and the like flag cleared.
func (r *commentRepository) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.CreatedAt = time.Now().UTC()
	comment.LikesCount = 0
	comment.IsLiked = false
	return r.comments.Insert(ctx, comment)
}

func (r *commentRepository) Update(ctx context.Context, id uint, mutate func(*models.Comment)) (models.Comment, error) {
	comment, err := r.comments.Update(ctx, id, mutate)
	if err != nil {
		return models.Comment{}, translateNotFound(err, "Comment", id)
	}
	return comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) (models.Comment, error) {
	comment, err := r.comments.Delete(ctx, id)
	if err != nil {
		return models.Comment{}, translateNotFound(err, "Comment", id)
	}
	return comment, nil
}

// ToggleLike flips the viewer-shared like flag and moves the like counter
// in the same direction, mirroring post likes.
func (r *commentRepository) ToggleLike(ctx context.Context, id uint) (models.Comment, error) {
	comment, err := r.comments.Update(ctx, id, func(c *models.Comment) {
		c.IsLiked = !c.IsLiked
		if c.IsLiked {
			c.LikesCount++
		} else {
			c.LikesCount = max(0, c.LikesCount-1)
		}
	})
	if err != nil {
		return models.Comment{}, translateNotFound(err, "Comment", id)
	}
	return comment, nil
}

// CountByPostID reports the number of live comments on the post.
func (r *commentRepository) CountByPostID(ctx context.Context, postID uint) (int, error) {
	comments, err := r.comments.Find(ctx, func(c models.Comment) bool {
		return c.PostID == postID
	})
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}
