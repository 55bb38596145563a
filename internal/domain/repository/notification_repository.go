package repository

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found for its owner.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence operations for in-app notifications.
type NotificationRepository interface {
	// Create persists a single notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser returns a user's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// CountUnread returns how many unread notifications a user has.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead flags one notification as read. It returns ErrNotificationNotFound
	// unless the notification belongs to userID.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flags every unread notification of a user and returns the number changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
