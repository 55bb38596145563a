// Package context carries request-scoped values from the delivery layer down to use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	actorKey
)

const (
	// HeaderXRequestID is the header a caller may use to propagate its own request ID.
	HeaderXRequestID = echo.HeaderXRequestID

	// maxRequestIDLen bounds caller-supplied IDs before they reach log lines.
	maxRequestIDLen = 128

	echoRequestIDKey = "request_id"
)

// NormalizeRequestID returns id when it is a usable caller-supplied request ID,
// otherwise a freshly generated one.
func NormalizeRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLen {
		return newRequestID()
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return newRequestID()
		}
	}

	return id
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.NewString()
}

// SetRequestID stores the request ID on the echo context for response use.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestID returns the ID stored by SetRequestID, or "" outside a request.
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithActor returns a copy of ctx carrying the authenticated user's ID.
// The request logger, when present, is re-scoped with a user_id attribute.
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, actorKey, userID)
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}

	return ctx
}

// ActorFromContext returns the authenticated user's ID, if any.
func ActorFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(actorKey).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
