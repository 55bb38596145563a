package impl

import (
	"context"
	"log/slog"

	deliverycontext "catrescue/internal/delivery/context"
	"catrescue/internal/domain/entity"
	"catrescue/internal/domain/repository"
	"catrescue/internal/domain/service"
	"catrescue/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationOutbox records notifications written inside a transaction.
// They are only published after the transaction commits.
type notificationOutbox struct {
	pending []*entity.Notification
}

// add persists a notification through repo and queues it for publishing.
func (o *notificationOutbox) add(ctx context.Context, repo repository.NotificationRepository, userID uuid.UUID, message string) error {
	notification := entity.NewNotification(userID, message)
	if err := repo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	o.pending = append(o.pending, notification)

	return nil
}

// notificationDispatcher hands committed notifications to the event publisher.
type notificationDispatcher struct {
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func newNotificationDispatcher(publisher service.EventPublisher, m *metrics.Metrics, logger *slog.Logger) *notificationDispatcher {
	return &notificationDispatcher{
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// dispatch publishes every queued notification. Failures are logged and never returned.
func (d *notificationDispatcher) dispatch(ctx context.Context, outbox *notificationOutbox) {
	if outbox == nil || len(outbox.pending) == 0 {
		return
	}

	d.metrics.AddNotificationsSent(len(outbox.pending))

	if d.publisher == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, notification := range outbox.pending {
		event := &service.NotificationEvent{
			RequestID:      requestID,
			NotificationID: notification.ID.String(),
			UserID:         notification.UserID.String(),
			Message:        notification.Message,
			CreatedAt:      notification.CreatedAt,
		}

		err := d.publisher.PublishNotificationEvent(ctx, event)
		d.metrics.IncrementEventPublished(err == nil)
		if err != nil {
			logger.Warn("Failed to publish notification event",
				slog.String("notification_id", event.NotificationID),
				slog.String("user_id", event.UserID),
				slog.Any("error", err),
			)
		}
	}
}
