package store

import (
	"time"

	"pulse/internal/models"
)

// Store bundles one collection per entity type. It is the single owner of
// all application state and is injected into repositories explicitly, so
// tests get isolation by constructing a fresh instance.
type Store struct {
	Users         *Collection[models.User]
	Posts         *Collection[models.Post]
	Comments      *Collection[models.Comment]
	Follows       *Collection[models.Follow]
	Conversations *Collection[models.Conversation]
	Messages      *Collection[models.Message]
	Notifications *Collection[models.Notification]
}

// New creates an empty store whose collections share one latency gate.
// Pass zero latency for immediate resolution (the default in tests).
func New(latency time.Duration) *Store {
	gate := NewLatency(latency)
	return &Store{
		Users:         NewCollection[models.User]("users", gate),
		Posts:         NewCollection[models.Post]("posts", gate),
		Comments:      NewCollection[models.Comment]("comments", gate),
		Follows:       NewCollection[models.Follow]("follows", gate),
		Conversations: NewCollection[models.Conversation]("conversations", gate),
		Messages:      NewCollection[models.Message]("messages", gate),
		Notifications: NewCollection[models.Notification]("notifications", gate),
	}
}
