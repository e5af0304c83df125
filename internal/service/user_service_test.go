package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/store"
)

func newUserService(users ...models.User) *UserService {
	st := store.New(0)
	st.Users.Seed(users)
	return NewUserService(repository.NewUserRepository(st.Users))
}

func TestCreateUserDefaultsDisplayName(t *testing.T) {
	svc := newUserService()

	user, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "alex"})
	require.NoError(t, err)
	assert.Equal(t, "alex", user.DisplayName)
}

func TestCreateUserRequiresUsername(t *testing.T) {
	svc := newUserService()

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "  "})
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, "Username is required", appErr.Message)
}

func TestUpdateUserPartialFields(t *testing.T) {
	svc := newUserService(models.User{ID: 1, Username: "alex", DisplayName: "Alex", Bio: "old bio"})
	ctx := context.Background()

	bio := "new bio"
	user, err := svc.UpdateUser(ctx, UpdateUserInput{UserID: 1, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "new bio", user.Bio)
	assert.Equal(t, "Alex", user.DisplayName)

	blank := " "
	_, err = svc.UpdateUser(ctx, UpdateUserInput{UserID: 1, DisplayName: &blank})
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestSearchUsersBlankQuery(t *testing.T) {
	svc := newUserService(models.User{ID: 1, Username: "alex"})

	users, err := svc.SearchUsers(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, users)
}
