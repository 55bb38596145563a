// Package notification delivers push copies of in-app notifications to user devices.
package notification

import (
	"context"

	"catrescue/internal/domain/service"
	"catrescue/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// collapseKey groups pushes on Android so a burst of adoption updates shows as one entry.
const collapseKey = "catrescue_notifications"

type firebaseService struct {
	client *messaging.Client
}

func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.PushService, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushBatchResult, error) {
	if len(tokens) == 0 {
		return &service.PushBatchResult{}, nil
	}
	if len(tokens) > service.MaxPushBatch {
		return nil, errors.Errorf("%d tokens exceed the multicast limit of %d", len(tokens), service.MaxPushBatch)
	}

	resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			CollapseKey: collapseKey,
			Priority:    "high",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushBatchResult{
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
	}
	for idx, r := range resp.Responses {
		if r.Error != nil && (messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error)) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}
