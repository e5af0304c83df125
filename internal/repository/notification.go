package repository

import (
	"context"
	"sort"
	"time"

	"pulse/internal/models"
	"pulse/internal/store"
)

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	GetByUserID(ctx context.Context, userID uint) ([]models.Notification, error)
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	MarkRead(ctx context.Context, id uint) (models.Notification, error)
	MarkAllRead(ctx context.Context, userID uint) (int, error)
	CountUnread(ctx context.Context, userID uint) (int, error)
}

type notificationRepository struct {
	notifications *store.Collection[models.Notification]
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(notifications *store.Collection[models.Notification]) NotificationRepository {
	return &notificationRepository{notifications: notifications}
}

// GetByUserID returns the user's notifications, newest first.
func (r *notificationRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifs, err := r.notifications.Find(ctx, func(n models.Notification) bool {
		return n.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notifs, func(i, j int) bool {
		if notifs[i].CreatedAt.Equal(notifs[j].CreatedAt) {
			return notifs[i].ID > notifs[j].ID
		}
		return notifs[i].CreatedAt.After(notifs[j].CreatedAt)
	})
	return notifs, nil
}

func (r *notificationRepository) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	n.Read = false
	n.CreatedAt = time.Now().UTC()
	return r.notifications.Insert(ctx, n)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint) (models.Notification, error) {
	n, err := r.notifications.Update(ctx, id, func(n *models.Notification) {
		n.Read = true
	})
	if err != nil {
		return models.Notification{}, translateNotFound(err, "Notification", id)
	}
	return n, nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many were changed.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint) (int, error) {
	return r.notifications.UpdateWhere(ctx,
		func(n models.Notification) bool { return n.UserID == userID && !n.Read },
		func(n *models.Notification) { n.Read = true },
	)
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uint) (int, error) {
	notifs, err := r.notifications.Find(ctx, func(n models.Notification) bool {
		return n.UserID == userID && !n.Read
	})
	if err != nil {
		return 0, err
	}
	return len(notifs), nil
}
