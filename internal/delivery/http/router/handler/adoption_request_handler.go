package handler

import (
	"log/slog"
	"net/http"

	"catrescue/internal/delivery/http/middleware"
	"catrescue/internal/delivery/http/response"
	"catrescue/internal/domain/entity"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdoptionRequestHandlerParams holds dependencies for AdoptionRequestHandler, injected by Fx.
type AdoptionRequestHandlerParams struct {
	fx.In

	RequestUC usecase.AdoptionRequestUsecase
	Logger    *slog.Logger
}

// AdoptionRequestHandler serves the adoption request workflow.
type AdoptionRequestHandler struct {
	requestUC usecase.AdoptionRequestUsecase
	logger    *slog.Logger
}

// NewAdoptionRequestHandler is the constructor for AdoptionRequestHandler
func NewAdoptionRequestHandler(params AdoptionRequestHandlerParams) *AdoptionRequestHandler {
	return &AdoptionRequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// CreateRequest submits an application against a listing.
func (h *AdoptionRequestHandler) CreateRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	var input usecase.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adoption request input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Adoption request submitted")
}

// ListSent returns the caller's own requests.
func (h *AdoptionRequestHandler) ListSent(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	requests, err := h.requestUC.ListSent(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// ListSentAccepted returns accepted requests with the receiver's contact details.
func (h *AdoptionRequestHandler) ListSentAccepted(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	contacts, err := h.requestUC.ListSentAccepted(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts, "")
}

// ListIncomingPending returns pending requests for the caller's listings.
func (h *AdoptionRequestHandler) ListIncomingPending(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	requests, err := h.requestUC.ListIncomingPending(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// ListIncomingAll returns every request for the caller's listings.
func (h *AdoptionRequestHandler) ListIncomingAll(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	requests, err := h.requestUC.ListIncomingAll(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetRequest returns one request to either participant.
func (h *AdoptionRequestHandler) GetRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "request")
	}

	request, err := h.requestUC.GetRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "")
}

// ApplyAction accepts or rejects a request. Both inputs come from the query string.
func (h *AdoptionRequestHandler) ApplyAction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	requestID, err := uuid.Parse(c.QueryParam("request_id"))
	if err != nil {
		return invalidID(c, "request")
	}

	action := entity.RequestStatus(c.QueryParam("action"))

	request, err := h.requestUC.ApplyAction(c.Request().Context(), userID, requestID, action)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Request "+string(request.Status))
}

// DeleteRequest withdraws a request.
func (h *AdoptionRequestHandler) DeleteRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "request")
	}

	if err := h.requestUC.DeleteRequest(c.Request().Context(), userID, requestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Request deleted")
}
