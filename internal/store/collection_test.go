package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models"
)

func TestInsertAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Post]("posts", nil)

	first, err := c.Insert(ctx, models.Post{Content: "one"})
	require.NoError(t, err)
	second, err := c.Insert(ctx, models.Post{Content: "two"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestIDsAreNeverReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Post]("posts", nil)

	_, err := c.Insert(ctx, models.Post{Content: "one"})
	require.NoError(t, err)
	second, err := c.Insert(ctx, models.Post{Content: "two"})
	require.NoError(t, err)

	_, err = c.Delete(ctx, second.ID)
	require.NoError(t, err)

	third, err := c.Insert(ctx, models.Post{Content: "three"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), third.ID, "deleted identifiers must not be reassigned")
}

func TestSeedRaisesIDWatermark(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Post]("posts", nil)
	c.Seed([]models.Post{
		{ID: 3, Content: "a"},
		{ID: 7, Content: "b"},
	})

	inserted, err := c.Insert(ctx, models.Post{Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, uint(8), inserted.ID)
}

func TestReadsReturnDetachedCopies(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Post]("posts", nil)
	c.Seed([]models.Post{{ID: 1, Content: "original", ImageURLs: []string{"a.png"}}})

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)

	// Mutating the returned value must not leak into the store.
	got.Content = "mutated"
	got.ImageURLs[0] = "evil.png"

	again, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Content)
	assert.Equal(t, "a.png", again.ImageURLs[0])
}

func TestUpdateKeepsIdentifierImmutable(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Post]("posts", nil)
	c.Seed([]models.Post{{ID: 5, Content: "before"}})

	updated, err := c.Update(ctx, 5, func(p *models.Post) {
		p.ID = 99
		p.Content = "after"
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), updated.ID)
	assert.Equal(t, "after", updated.Content)

	_, err = c.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertIfRejectsConflicts(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.User]("users", nil)
	c.Seed([]models.User{{ID: 1, Username: "ada"}})

	_, err := c.InsertIf(ctx, models.User{Username: "ada"}, func(u models.User) bool {
		return u.Username == "ada"
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, c.Len())

	stored, err := c.InsertIf(ctx, models.User{Username: "grace"}, func(u models.User) bool {
		return u.Username == "grace"
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), stored.ID)
}

func TestUpdateWhereCountsChanges(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Notification]("notifications", nil)
	c.Seed([]models.Notification{
		{ID: 1, UserID: 1, Read: false},
		{ID: 2, UserID: 1, Read: false},
		{ID: 3, UserID: 2, Read: false},
	})

	n, err := c.UpdateWhere(ctx,
		func(nt models.Notification) bool { return nt.UserID == 1 && !nt.Read },
		func(nt *models.Notification) { nt.Read = true },
	)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := c.Find(ctx, func(nt models.Notification) bool { return !nt.Read })
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, uint(3), remaining[0].ID)
}

func TestDeleteWhereMissReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Follow]("follows", nil)
	c.Seed([]models.Follow{{ID: 1, FollowerID: 1, FollowingID: 2}})

	_, err := c.DeleteWhere(ctx, func(f models.Follow) bool {
		return f.FollowerID == 9 && f.FollowingID == 9
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, c.Len())
}

func TestFindOneReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[models.Comment]("comments", nil)
	c.Seed([]models.Comment{
		{ID: 1, PostID: 10},
		{ID: 2, PostID: 10},
	})

	got, err := c.FindOne(ctx, func(cm models.Comment) bool { return cm.PostID == 10 })
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)

	_, err = c.FindOne(ctx, func(cm models.Comment) bool { return cm.PostID == 11 })
	assert.ErrorIs(t, err, ErrNotFound)
}
