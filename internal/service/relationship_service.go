// Package service implements the application's business logic on top of
// the repository layer.
package service

import (
	"context"
	"sync"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
)

// RelationshipService manages follow edges between users. Edge mutation
// and the follower/following counters move together: after every call the
// edge count and the counter values agree.
type RelationshipService struct {
	follows       repository.FollowRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository

	// mu serializes edge+counter mutation so the two collections cannot
	// drift apart under concurrent follows.
	mu sync.Mutex
}

// NewRelationshipService creates a new relationship service
func NewRelationshipService(
	follows repository.FollowRepository,
	users repository.UserRepository,
	notifications repository.NotificationRepository,
) *RelationshipService {
	return &RelationshipService{
		follows:       follows,
		users:         users,
		notifications: notifications,
	}
}

// Follow creates a follow edge from follower to following and bumps both
// users' counters. Self-follows are rejected; an existing edge fails with
// a duplicate-relation error.
func (s *RelationshipService) Follow(ctx context.Context, followerID, followingID uint) (models.Follow, error) {
	span, ctx := observability.NewSpan(ctx, "relationship.follow")
	defer span.End()

	if followerID == followingID {
		return models.Follow{}, models.NewValidationError("Cannot follow yourself")
	}

	// Both endpoints must exist before the edge is created.
	if _, err := s.users.GetByID(ctx, followerID); err != nil {
		return models.Follow{}, err
	}
	if _, err := s.users.GetByID(ctx, followingID); err != nil {
		return models.Follow{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edge, err := s.follows.Create(ctx, followerID, followingID)
	if err != nil {
		span.SetError(err)
		return models.Follow{}, err
	}

	if _, err := s.users.AdjustCounts(ctx, followingID, 1, 0); err != nil {
		return models.Follow{}, err
	}
	if _, err := s.users.AdjustCounts(ctx, followerID, 0, 1); err != nil {
		return models.Follow{}, err
	}

	observability.CountFollowMutation("follow")
	s.notify(ctx, models.Notification{
		UserID:  followingID,
		ActorID: followerID,
		Type:    models.NotificationTypeFollow,
	})

	return edge, nil
}

// Unfollow removes the follow edge and decrements both users' counters.
// A missing edge fails with a not-found error, so a second unfollow of the
// same pair is rejected.
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, followingID uint) (models.Follow, error) {
	span, ctx := observability.NewSpan(ctx, "relationship.unfollow")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	edge, err := s.follows.DeleteByPair(ctx, followerID, followingID)
	if err != nil {
		span.SetError(err)
		return models.Follow{}, err
	}

	if _, err := s.users.AdjustCounts(ctx, followingID, -1, 0); err != nil {
		return models.Follow{}, err
	}
	if _, err := s.users.AdjustCounts(ctx, followerID, 0, -1); err != nil {
		return models.Follow{}, err
	}

	observability.CountFollowMutation("unfollow")
	return edge, nil
}

// IsFollowing reports whether follower currently follows following.
func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, followingID)
}

// GetFollowingIDs returns the ids of every user the given user follows.
func (s *RelationshipService) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.follows.FollowingIDs(ctx, userID)
}

// GetFollowers returns the users following the given user.
func (s *RelationshipService) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	edges, err := s.follows.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ctx, edges, func(e models.Follow) uint { return e.FollowerID })
}

// GetFollowing returns the users the given user follows.
func (s *RelationshipService) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	edges, err := s.follows.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ctx, edges, func(e models.Follow) uint { return e.FollowingID })
}

// resolveUsers maps follow edges to user records, skipping edges whose
// endpoint no longer exists.
func (s *RelationshipService) resolveUsers(ctx context.Context, edges []models.Follow, pick func(models.Follow) uint) ([]models.User, error) {
	users := make([]models.User, 0, len(edges))
	for _, edge := range edges {
		user, err := s.users.GetByID(ctx, pick(edge))
		if err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *RelationshipService) notify(ctx context.Context, n models.Notification) {
	if _, err := s.notifications.Create(ctx, n); err != nil {
		observability.GlobalLogger.WarnContext(ctx, "notification fanout failed",
			"type", string(n.Type), "user_id", n.UserID, "error", err)
		return
	}
	observability.CountNotificationCreated(string(n.Type))
}
