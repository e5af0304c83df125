package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/models"
	"pulse/internal/store"
)

// FollowRepository defines the interface for follow edge data operations
type FollowRepository interface {
	List(ctx context.Context) ([]models.Follow, error)
	Create(ctx context.Context, followerID, followingID uint) (models.Follow, error)
	DeleteByPair(ctx context.Context, followerID, followingID uint) (models.Follow, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	GetFollowers(ctx context.Context, userID uint) ([]models.Follow, error)
	GetFollowing(ctx context.Context, userID uint) ([]models.Follow, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	follows *store.Collection[models.Follow]
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(follows *store.Collection[models.Follow]) FollowRepository {
	return &followRepository{follows: follows}
}

func (r *followRepository) List(ctx context.Context) ([]models.Follow, error) {
	return r.follows.All(ctx)
}

// Create stores a new follow edge. The uniqueness check on the
// (follower, following) pair and the insert happen under one lock, so
// concurrent follows of the same pair cannot both succeed.
func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) (models.Follow, error) {
	edge := models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := r.follows.InsertIf(ctx, edge, func(existing models.Follow) bool {
		return existing.FollowerID == followerID && existing.FollowingID == followingID
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return models.Follow{}, models.NewDuplicateRelationError("Already following this user")
		}
		return models.Follow{}, err
	}
	return created, nil
}

// DeleteByPair removes the edge for the given pair and returns it.
func (r *followRepository) DeleteByPair(ctx context.Context, followerID, followingID uint) (models.Follow, error) {
	edge, err := r.follows.DeleteWhere(ctx, func(f models.Follow) bool {
		return f.FollowerID == followerID && f.FollowingID == followingID
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Follow{}, &models.AppError{
				Code:    models.CodeNotFound,
				Message: "Follow relationship not found",
			}
		}
		return models.Follow{}, err
	}
	return edge, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	_, err := r.follows.FindOne(ctx, func(f models.Follow) bool {
		return f.FollowerID == followerID && f.FollowingID == followingID
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetFollowers returns the edges pointing at the user.
func (r *followRepository) GetFollowers(ctx context.Context, userID uint) ([]models.Follow, error) {
	return r.follows.Find(ctx, func(f models.Follow) bool {
		return f.FollowingID == userID
	})
}

// GetFollowing returns the edges originating from the user.
func (r *followRepository) GetFollowing(ctx context.Context, userID uint) ([]models.Follow, error) {
	return r.follows.Find(ctx, func(f models.Follow) bool {
		return f.FollowerID == userID
	})
}

// FollowingIDs returns the ids of every user the given user follows.
func (r *followRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	edges, err := r.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.FollowingID)
	}
	return ids, nil
}
