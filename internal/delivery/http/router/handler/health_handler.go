package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"catrescue/config"
	"catrescue/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// HealthHandler reports liveness and database readiness.
type HealthHandler struct {
	db          *gorm.DB
	serviceName string
	logger      *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	serviceName := params.Config.Env.ServiceName
	if serviceName == "" {
		serviceName = "catrescue"
	}

	return &HealthHandler{
		db:          params.DB,
		serviceName: serviceName,
		logger:      params.Logger,
	}
}

// Banner identifies the service.
func (h *HealthHandler) Banner(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"service": h.serviceName}, "Cat rescue API is running")
}

// Healthz pings the database and reports 503 when it is unreachable.
func (h *HealthHandler) Healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("Database health check failed", slog.Any("error", err))

		return response.ServiceUnavailable(c, "DATABASE_UNAVAILABLE", "Database is unreachable")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok", "database": "ok"}, "Service is healthy")
}
