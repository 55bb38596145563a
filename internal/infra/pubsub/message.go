package pubsub

import (
	"encoding/json"

	"catrescue/internal/domain/service"

	"github.com/pkg/errors"
)

// eventTypeNotificationCreated tags every message so subscriptions can filter on it.
const eventTypeNotificationCreated = "notification.created"

// encodeEvent returns the message payload and attributes shared by every publisher.
// Attributes mirror the payload IDs so the notifier can log before decoding.
func encodeEvent(event *service.NotificationEvent) ([]byte, map[string]string, error) {
	if event == nil || event.NotificationID == "" {
		return nil, nil, errors.New("notification event without id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "marshal notification event")
	}

	attrs := map[string]string{
		"event_type":      eventTypeNotificationCreated,
		"notification_id": event.NotificationID,
		"user_id":         event.UserID,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return data, attrs, nil
}
