// Package handler turns Pub/Sub push deliveries into FCM notifications.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"catrescue/config"
	deliverycontext "catrescue/internal/delivery/context"
	"catrescue/internal/domain/constants"
	"catrescue/internal/domain/repository"
	"catrescue/internal/domain/service"
	"catrescue/internal/errors"
	"catrescue/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	pushTitle     = "Cat Rescue"
	pushBatchSize = service.MaxPushBatch
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type tokenVerifier func(req *http.Request) error

// PushHandler fans a notification event out to the recipient's devices.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	metrics        *metrics.Metrics
	pushSvc        service.PushService
	deviceRepo     repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Metrics    *metrics.Metrics `optional:"true"`
	PushSvc    service.PushService
	DeviceRepo repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub pushes carry a Google-signed token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		metrics:        params.Metrics,
		pushSvc:        params.PushSvc,
		deviceRepo:     params.DeviceRepo,
	}
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery, which gets 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("notification_id", event.NotificationID),
		slog.String("user_id", event.UserID),
	)

	if err := h.processNotification(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound context.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.NotificationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processNotification(ctx context.Context, logger *slog.Logger, event *service.NotificationEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "invalid user id in event")
	}

	devices, err := h.deviceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if len(devices) == 0 {
		logger.Info("[Worker] No active devices for recipient",
			slog.String("notification_id", event.NotificationID),
		)

		return nil
	}

	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		if _, dup := seen[device.FCMToken]; !dup {
			seen[device.FCMToken] = struct{}{}
			tokens = append(tokens, device.FCMToken)
		}
	}

	msg := &service.PushMessage{
		Title: pushTitle,
		Body:  event.Message,
		Data: map[string]string{
			"notification_id": event.NotificationID,
			"user_id":         event.UserID,
		},
	}

	sent, failed, invalidTokens := h.sendBatches(ctx, logger, tokens, msg)
	h.deactivateInvalidTokens(ctx, logger, userID, invalidTokens)

	logger.Info("[Worker] Notification sending completed",
		slog.String("notification_id", event.NotificationID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

func (h *PushHandler) sendBatches(ctx context.Context, logger *slog.Logger, tokens []string, msg *service.PushMessage) (sent, failed int, invalidTokens []string) {
	for idx := 0; idx < len(tokens); idx += pushBatchSize {
		end := min(idx+pushBatchSize, len(tokens))
		batch := tokens[idx:end]

		result, err := h.pushSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			failed += len(batch)
			h.metrics.AddPushDeliveries(0, len(batch))

			continue
		}

		sent += result.SuccessCount
		failed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
		h.metrics.AddPushDeliveries(result.SuccessCount, result.FailureCount)
	}

	return sent, failed, invalidTokens
}

// deactivateInvalidTokens parks devices whose tokens FCM reported as unregistered.
func (h *PushHandler) deactivateInvalidTokens(ctx context.Context, logger *slog.Logger, userID uuid.UUID, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	n, err := h.deviceRepo.DeactivateTokens(ctx, userID, invalidTokens)
	if err != nil {
		logger.Warn("[Worker] Failed to deactivate invalid device tokens",
			slog.Int("tokens", len(invalidTokens)),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("[Worker] Deactivated devices with invalid tokens", slog.Int64("devices", n))
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
