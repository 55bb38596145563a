package handler

import (
	"log/slog"
	"net/http"

	"catrescue/internal/delivery/http/middleware"
	"catrescue/internal/delivery/http/response"
	"catrescue/internal/domain/entity"
	"catrescue/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// PinHandlerParams holds dependencies for PinHandler, injected by Fx.
type PinHandlerParams struct {
	fx.In

	PinUC  usecase.PinUsecase
	Logger *slog.Logger
}

// PinHandler serves the street map pins.
type PinHandler struct {
	pinUC  usecase.PinUsecase
	logger *slog.Logger
}

// NewPinHandler is the constructor for PinHandler
func NewPinHandler(params PinHandlerParams) *PinHandler {
	return &PinHandler{
		pinUC:  params.PinUC,
		logger: params.Logger,
	}
}

// ListPins returns the latest pins.
func (h *PinHandler) ListPins(c echo.Context) error {
	pins, err := h.pinUC.ListPins(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pins, "")
}

// ListPinsGeoJSON returns the latest pins as a FeatureCollection of points.
func (h *PinHandler) ListPinsGeoJSON(c echo.Context) error {
	pins, err := h.pinUC.ListPins(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data, err := pinFeatureCollection(pins).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode pins as geojson")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, data)
}

func pinFeatureCollection(pins []*entity.PinView) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, pin := range pins {
		feature := geojson.NewFeature(pin.Point())
		feature.ID = pin.ID.String()
		feature.Properties["cat_id"] = pin.CatID.String()
		feature.Properties["cat_name"] = pin.CatName
		feature.Properties["condition"] = string(pin.Condition)
		feature.Properties["updated_at"] = pin.UpdatedAt
		if pin.AddingUserID != nil {
			feature.Properties["adding_user_id"] = pin.AddingUserID.String()
			feature.Properties["adding_user_username"] = pin.AddingUserUsername
		}
		fc.Append(feature)
	}

	return fc
}

// ReportPin places or moves a cat's pin. It needs no account.
func (h *PinHandler) ReportPin(c echo.Context) error {
	var input usecase.ReportPinInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pin input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	pin, err := h.pinUC.ReportPin(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pin, "Pin saved")
}

// UpdateCondition changes the condition flag of a pin.
func (h *PinHandler) UpdateCondition(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	pinID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "pin")
	}

	var input usecase.UpdateConditionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid condition input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	pin, err := h.pinUC.UpdateCondition(c.Request().Context(), userID, pinID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pin, "Condition updated")
}

// DeletePin removes a pin.
func (h *PinHandler) DeletePin(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	pinID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "pin")
	}

	if err := h.pinUC.DeletePin(c.Request().Context(), userID, pinID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Pin deleted")
}
