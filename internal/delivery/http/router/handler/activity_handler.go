package handler

import (
	"log/slog"
	"net/http"

	"catrescue/internal/delivery/http/middleware"
	"catrescue/internal/delivery/http/response"
	"catrescue/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler serves the per-cat activity trail.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// ListMyActivity returns the entries written by the caller.
func (h *ActivityHandler) ListMyActivity(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	logs, err := h.activityUC.ListMyActivity(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

// ListCatActivity returns a cat's trail to an authenticated caller.
func (h *ActivityHandler) ListCatActivity(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	catID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "cat")
	}

	logs, err := h.activityUC.ListCatActivity(c.Request().Context(), userID, catID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

// ListPublicCatActivity returns a cat's trail without authentication.
func (h *ActivityHandler) ListPublicCatActivity(c echo.Context) error {
	catID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "cat")
	}

	logs, err := h.activityUC.ListPublicCatActivity(c.Request().Context(), catID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

// AddContribution records a community update about a cat.
func (h *ActivityHandler) AddContribution(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	var input usecase.AddContributionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.activityUC.AddContribution(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Activity recorded")
}
