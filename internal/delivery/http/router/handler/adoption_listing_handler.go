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

const mimePNG = "image/png"

// AdoptionListingHandlerParams holds dependencies for AdoptionListingHandler, injected by Fx.
type AdoptionListingHandlerParams struct {
	fx.In

	ListingUC usecase.AdoptionListingUsecase
	Logger    *slog.Logger
}

// AdoptionListingHandler serves adoption listings.
type AdoptionListingHandler struct {
	listingUC usecase.AdoptionListingUsecase
	logger    *slog.Logger
}

// NewAdoptionListingHandler is the constructor for AdoptionListingHandler
func NewAdoptionListingHandler(params AdoptionListingHandlerParams) *AdoptionListingHandler {
	return &AdoptionListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// CreateListing lists one of the caller's cats for adoption.
func (h *AdoptionListingHandler) CreateListing(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	var input usecase.CreateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created")
}

// ListListings returns every listing, newest first.
func (h *AdoptionListingHandler) ListListings(c echo.Context) error {
	listings, err := h.listingUC.ListListings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// UpdateListing merge-patches a listing.
func (h *AdoptionListingHandler) UpdateListing(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	listingID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "listing")
	}

	var input usecase.UpdateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), userID, listingID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated")
}

// DeleteListing withdraws a listing.
func (h *AdoptionListingHandler) DeleteListing(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return invalidUserID(c)
	}

	listingID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "listing")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), userID, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted")
}

// GetListingQRCode renders the listing's share code as a PNG.
func (h *AdoptionListingHandler) GetListingQRCode(c echo.Context) error {
	listingID, err := uuidParam(c, "id")
	if err != nil {
		return invalidID(c, "listing")
	}

	png, err := h.listingUC.GetListingQRCode(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, mimePNG, png)
}
