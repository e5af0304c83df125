package service

import (
	"context"
	"strings"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// UserService manages user profiles and discovery.
type UserService struct {
	users repository.UserRepository
}

// CreateUserInput carries the fields for a new user.
type CreateUserInput struct {
	Username    string
	DisplayName string
	Bio         string
	AvatarURL   string
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched; the user id and username are immutable.
type UpdateUserInput struct {
	UserID      uint
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// ListUsers returns every user.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, id uint) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// SearchUsers matches the query against usernames and display names.
// A blank query returns no results.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return s.users.Search(ctx, query)
}

// CreateUser validates and stores a new user.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return models.User{}, models.NewValidationError("Username is required")
	}
	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		displayName = username
	}

	return s.users.Create(ctx, models.User{
		Username:    username,
		DisplayName: displayName,
		Bio:         in.Bio,
		AvatarURL:   in.AvatarURL,
	})
}

// UpdateUser applies a partial profile update.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (models.User, error) {
	if in.DisplayName != nil && strings.TrimSpace(*in.DisplayName) == "" {
		return models.User{}, models.NewValidationError("Display name cannot be blank")
	}

	return s.users.Update(ctx, in.UserID, func(u *models.User) {
		if in.DisplayName != nil {
			u.DisplayName = strings.TrimSpace(*in.DisplayName)
		}
		if in.Bio != nil {
			u.Bio = *in.Bio
		}
		if in.AvatarURL != nil {
			u.AvatarURL = *in.AvatarURL
		}
	})
}

// DeleteUser removes the user and returns the removed copy.
func (s *UserService) DeleteUser(ctx context.Context, id uint) (models.User, error) {
	return s.users.Delete(ctx, id)
}
