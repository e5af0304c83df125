package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// NotificationService manages activity notifications.
type NotificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.notifications.GetByUserID(ctx, userID)
}

// UnreadCount reports how many of the user's notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// MarkRead marks a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) (models.Notification, error) {
	return s.notifications.MarkRead(ctx, id)
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many were changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int, error) {
	return s.notifications.MarkAllRead(ctx, userID)
}
