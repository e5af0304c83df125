package repository

import (
	"context"
	"slices"
	"sort"
	"time"

	"pulse/internal/models"
	"pulse/internal/store"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id uint) (models.Post, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Post, error)
	GetFeed(ctx context.Context, followingIDs []uint) ([]models.Post, error)
	Create(ctx context.Context, post models.Post) (models.Post, error)
	Update(ctx context.Context, id uint, mutate func(*models.Post)) (models.Post, error)
	Delete(ctx context.Context, id uint) (models.Post, error)
	ToggleLike(ctx context.Context, id uint) (models.Post, error)
	AdjustCommentCount(ctx context.Context, id uint, delta int) (models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	posts *store.Collection[models.Post]
}

// NewPostRepository creates a new post repository
func NewPostRepository(posts *store.Collection[models.Post]) PostRepository {
	return &postRepository{posts: posts}
}

// List returns every post, newest first.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	posts, err := r.posts.All(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (models.Post, error) {
	post, err := r.posts.Get(ctx, id)
	if err != nil {
		return models.Post{}, translateNotFound(err, "Post", id)
	}
	return post, nil
}

// GetByUserID returns the user's posts, newest first.
func (r *postRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Post, error) {
	posts, err := r.posts.Find(ctx, func(p models.Post) bool {
		return p.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

// GetFeed returns posts authored by the followed users, newest first.
// An empty following list falls back to all posts so a fresh account
// still sees content.
func (r *postRepository) GetFeed(ctx context.Context, followingIDs []uint) ([]models.Post, error) {
	if len(followingIDs) == 0 {
		return r.List(ctx)
	}

	posts, err := r.posts.Find(ctx, func(p models.Post) bool {
		return slices.Contains(followingIDs, p.UserID)
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

// Create stores a new post with a fresh creation timestamp, zeroed
// counters, and the like flag cleared.
func (r *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	post.CreatedAt = time.Now().UTC()
	post.LikesCount = 0
	post.CommentsCount = 0
	post.IsLiked = false
	return r.posts.Insert(ctx, post)
}

func (r *postRepository) Update(ctx context.Context, id uint, mutate func(*models.Post)) (models.Post, error) {
	post, err := r.posts.Update(ctx, id, mutate)
	if err != nil {
		return models.Post{}, translateNotFound(err, "Post", id)
	}
	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) (models.Post, error) {
	post, err := r.posts.Delete(ctx, id)
	if err != nil {
		return models.Post{}, translateNotFound(err, "Post", id)
	}
	return post, nil
}

// ToggleLike flips the viewer-shared like flag and moves the like counter
// in the same direction, atomically under the collection lock.
func (r *postRepository) ToggleLike(ctx context.Context, id uint) (models.Post, error) {
	post, err := r.posts.Update(ctx, id, func(p *models.Post) {
		p.IsLiked = !p.IsLiked
		if p.IsLiked {
			p.LikesCount++
		} else {
			p.LikesCount = max(0, p.LikesCount-1)
		}
	})
	if err != nil {
		return models.Post{}, translateNotFound(err, "Post", id)
	}
	return post, nil
}

// AdjustCommentCount shifts the comment counter by delta, clamping at zero.
func (r *postRepository) AdjustCommentCount(ctx context.Context, id uint, delta int) (models.Post, error) {
	post, err := r.posts.Update(ctx, id, func(p *models.Post) {
		p.CommentsCount = max(0, p.CommentsCount+delta)
	})
	if err != nil {
		return models.Post{}, translateNotFound(err, "Post", id)
	}
	return post, nil
}

// sortNewestFirst orders posts by creation time descending, breaking ties
// by identifier so ordering is deterministic for same-instant posts.
func sortNewestFirst(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
