package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"pulse/internal/models"
	"pulse/internal/store"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, id uint, mutate func(*models.User)) (models.User, error)
	Delete(ctx context.Context, id uint) (models.User, error)
	AdjustCounts(ctx context.Context, id uint, followers, following int) (models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	users *store.Collection[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(users *store.Collection[models.User]) UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	return r.users.All(ctx)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (models.User, error) {
	user, err := r.users.Get(ctx, id)
	if err != nil {
		return models.User{}, translateNotFound(err, "User", id)
	}
	return user, nil
}

// Search matches the query case-insensitively against username and display
// name. A blank query returns no results without scanning the collection.
func (r *userRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.User{}, nil
	}

	return r.users.Find(ctx, func(u models.User) bool {
		return strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.DisplayName), q)
	})
}

// Create stores a new user. Usernames are unique case-insensitively;
// follower counters start at zero and the join date is stamped here.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	user.FollowersCount = 0
	user.FollowingCount = 0
	user.JoinedDate = time.Now().UTC()

	created, err := r.users.InsertIf(ctx, user, func(existing models.User) bool {
		return strings.EqualFold(existing.Username, user.Username)
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return models.User{}, models.NewValidationError("Username is already taken")
		}
		return models.User{}, err
	}
	return created, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, mutate func(*models.User)) (models.User, error) {
	user, err := r.users.Update(ctx, id, mutate)
	if err != nil {
		return models.User{}, translateNotFound(err, "User", id)
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) (models.User, error) {
	user, err := r.users.Delete(ctx, id)
	if err != nil {
		return models.User{}, translateNotFound(err, "User", id)
	}
	return user, nil
}

// AdjustCounts shifts the follower and following counters by the given
// deltas, clamping at zero so the counters never go negative.
func (r *userRepository) AdjustCounts(ctx context.Context, id uint, followers, following int) (models.User, error) {
	user, err := r.users.Update(ctx, id, func(u *models.User) {
		u.FollowersCount = max(0, u.FollowersCount+followers)
		u.FollowingCount = max(0, u.FollowingCount+following)
	})
	if err != nil {
		return models.User{}, translateNotFound(err, "User", id)
	}
	return user, nil
}
