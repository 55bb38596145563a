package impl

import (
	"context"
	"log/slog"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListNotifications returns the user's inbox, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notifications []*entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NotificationRepo().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find notifications")
		}
		notifications = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount returns how many notifications the user has not read.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NotificationRepo().CountUnread(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}
		count = n

		return nil
	})

	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one of the user's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NotificationRepo().MarkRead(ctx, notificationID, userID); err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
			}

			return errors.Wrap(err, "failed to mark notification read")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags every unread notification of the user.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var updated int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NotificationRepo().MarkAllRead(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to mark notifications read")
		}
		updated = n

		return nil
	})

	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	srv.logger.Debug("Notifications marked read", "userID", userID, "count", updated)

	return updated, nil
}
