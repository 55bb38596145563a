package service

import "context"

// MaxPushBatch is the most device tokens one SendBatch call accepts (the FCM multicast limit).
const MaxPushBatch = 500

// PushMessage is the device-facing copy of an in-app notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult reports one multicast send. InvalidTokens lists tokens the
// provider reported as permanently unusable.
type PushBatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// PushService delivers notifications to user devices.
type PushService interface {
	SendBatch(ctx context.Context, tokens []string, msg *PushMessage) (*PushBatchResult, error)
}
