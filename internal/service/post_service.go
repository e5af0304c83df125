package service

import (
	"context"
	"strings"

	"pulse/internal/models"
	"pulse/internal/repository"
)

const maxPostContentLen = 5000

// PostService manages post creation and feed assembly.
type PostService struct {
	posts   repository.PostRepository
	follows repository.FollowRepository
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	UserID    uint
	Content   string
	ImageURLs []string
}

// UpdatePostInput carries a partial post update. Nil fields are left
// untouched; the post id itself is immutable.
type UpdatePostInput struct {
	PostID    uint
	Content   *string
	ImageURLs *[]string
}

// NewPostService creates a new post service
func NewPostService(posts repository.PostRepository, follows repository.FollowRepository) *PostService {
	return &PostService{posts: posts, follows: follows}
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// GetPost returns the post with the given id.
func (s *PostService) GetPost(ctx context.Context, id uint) (models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// GetUserPosts returns the user's posts, newest first.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.posts.GetByUserID(ctx, userID)
}

// Feed returns the viewer's feed: posts from followed users, newest
// first, falling back to all posts when the viewer follows nobody.
func (s *PostService) Feed(ctx context.Context, viewerID uint) ([]models.Post, error) {
	followingIDs, err := s.follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return s.posts.GetFeed(ctx, followingIDs)
}

// CreatePost validates and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return models.Post{}, models.NewValidationError("Content is required")
	}
	if len(content) > maxPostContentLen {
		return models.Post{}, models.NewValidationError("Content too long (max 5000 characters)")
	}

	return s.posts.Create(ctx, models.Post{
		UserID:    in.UserID,
		Content:   content,
		ImageURLs: in.ImageURLs,
	})
}

// UpdatePost applies a partial update to the post.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (models.Post, error) {
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return models.Post{}, models.NewValidationError("Content is required")
		}
		if len(*in.Content) > maxPostContentLen {
			return models.Post{}, models.NewValidationError("Content too long (max 5000 characters)")
		}
	}

	return s.posts.Update(ctx, in.PostID, func(p *models.Post) {
		if in.Content != nil {
			p.Content = strings.TrimSpace(*in.Content)
		}
		if in.ImageURLs != nil {
			p.ImageURLs = *in.ImageURLs
		}
	})
}

// DeletePost removes the post and returns the removed copy.
func (s *PostService) DeletePost(ctx context.Context, id uint) (models.Post, error) {
	return s.posts.Delete(ctx, id)
}
