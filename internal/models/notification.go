package models

import "time"

// NotificationType identifies the activity that produced a notification.
type NotificationType string

const (
	// NotificationTypeLike indicates that someone liked the recipient's post.
	NotificationTypeLike NotificationType = "like"
	// NotificationTypeComment indicates a new comment on the recipient's post.
	NotificationTypeComment NotificationType = "comment"
	// NotificationTypeFollow indicates a new follower.
	NotificationTypeFollow NotificationType = "follow"
)

// Notification represents an activity notification delivered to a user.
type Notification struct {
	ID        uint             `json:"id"`
	UserID    uint             `json:"user_id"`
	ActorID   uint             `json:"actor_id"`
	Type      NotificationType `json:"type"`
	PostID    *uint            `json:"post_id,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// RecordID returns the notification's unique identifier.
func (n Notification) RecordID() uint { return n.ID }

// WithID returns a copy of the notification with the given identifier.
func (n Notification) WithID(id uint) Notification { n.ID = id; return n }

// Clone returns a detached copy of the notification.
func (n Notification) Clone() Notification {
	if n.PostID != nil {
		id := *n.PostID
		n.PostID = &id
	}
	return n
}
