package notification

import (
	"context"
	"log/slog"

	"catrescue/config"
	"catrescue/internal/domain/service"
)

// NewPushService returns the Firebase sender when credentials are configured,
// otherwise a sender that only logs.
func NewPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push delivery will only be logged")

		return NewLogPushService(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

type logPushService struct {
	logger *slog.Logger
}

// NewLogPushService records deliveries in the log and reports every token as delivered.
func NewLogPushService(logger *slog.Logger) service.PushService {
	return &logPushService{logger: logger}
}

func (s *logPushService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushBatchResult, error) {
	s.logger.InfoContext(ctx, "Push notification (log only)",
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Int("tokens", len(tokens)),
	)

	return &service.PushBatchResult{SuccessCount: len(tokens)}, nil
}
