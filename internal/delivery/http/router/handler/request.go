package handler

import (
	"catrescue/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func invalidUserID(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func invalidID(c echo.Context, label string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+label+" ID")
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
