package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
	"pulse/internal/service"
)

// Factory builds demo entities on top of the fixtures. It goes through
// the repositories and services so generated data honors the same
// invariants as real traffic, counters included.
type Factory struct {
	users         repository.UserRepository
	posts         repository.PostRepository
	relationships *service.RelationshipService
	rand          *rand.Rand
}

// NewFactory creates a new Factory bound to the given repositories.
func NewFactory(
	users repository.UserRepository,
	posts repository.PostRepository,
	relationships *service.RelationshipService,
) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		users:         users,
		posts:         posts,
		relationships: relationships,
		rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedDemoUsers creates n generated users, each with a couple of posts and
// a few follow edges toward existing users. Individual failures are logged
// and skipped so a collision never aborts startup.
func (f *Factory) SeedDemoUsers(ctx context.Context, n int) error {
	existing, err := f.users.List(ctx)
	if err != nil {
		return err
	}
	existingIDs := make([]uint, 0, len(existing))
	for _, u := range existing {
		existingIDs = append(existingIDs, u.ID)
	}

	for i := 0; i < n; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), f.rand.Intn(900)+100)
		user, err := f.users.Create(ctx, f.buildUser(username))
		if err != nil {
			observability.GlobalLogger.WarnContext(ctx, "demo user skipped",
				"username", username, "error", err)
			continue
		}

		for p := 0; p < f.rand.Intn(3)+1; p++ {
			if _, err := f.posts.Create(ctx, f.buildPost(user.ID)); err != nil {
				observability.GlobalLogger.WarnContext(ctx, "demo post skipped",
					"user_id", user.ID, "error", err)
			}
		}

		for _, target := range f.pickFollowTargets(existingIDs) {
			if _, err := f.relationships.Follow(ctx, user.ID, target); err != nil {
				observability.GlobalLogger.WarnContext(ctx, "demo follow skipped",
					"follower_id", user.ID, "following_id", target, "error", err)
			}
		}
	}

	return nil
}

func (f *Factory) buildUser(username string) models.User {
	return models.User{
		Username:    username,
		DisplayName: gofakeit.Name(),
		Bio:         gofakeit.Sentence(8),
		AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
}

func (f *Factory) buildPost(userID uint) models.Post {
	post := models.Post{
		UserID:  userID,
		Content: gofakeit.Paragraph(1, 2, 8, " "),
	}
	if f.rand.Intn(2) == 0 {
		post.ImageURLs = []string{
			fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		}
	}
	return post
}

// pickFollowTargets returns up to three distinct targets from the pool.
func (f *Factory) pickFollowTargets(pool []uint) []uint {
	if len(pool) == 0 {
		return nil
	}
	shuffled := make([]uint, len(pool))
	copy(shuffled, pool)
	f.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(3, len(shuffled))]
}
