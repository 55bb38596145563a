package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catrescue/internal/domain/entity"
	mockUsecase "catrescue/internal/mocks/usecase"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceHandler(t *testing.T) {
	userID := uuid.New()

	setup := func(t *testing.T) (*echo.Echo, *mockUsecase.MockDeviceUsecase) {
		uc := mockUsecase.NewMockDeviceUsecase(t)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: newDiscardLogger()})

		e := newTestEcho()
		g := e.Group("/devices", asUser(userID))
		g.POST("", h.RegisterDevice)
		g.PUT("/:id/token", h.UpdateFCMToken)

		return e, uc
	}

	t.Run("register", func(t *testing.T) {
		e, uc := setup(t)
		uc.EXPECT().RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{
			FCMToken: "tok", DeviceID: "phone-1", Platform: entity.Platform("android"),
		}).Return(&entity.UserDevice{ID: uuid.New()}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/devices",
			strings.NewReader(`{"fcm_token":"tok","device_id":"phone-1","platform":"android"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		e, _ := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/devices",
			strings.NewReader(`{"fcm_token":"tok","device_id":"phone-1","platform":"symbian"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token update requires a token", func(t *testing.T) {
		e, _ := setup(t)

		req := httptest.NewRequest(http.MethodPut, "/devices/"+uuid.NewString()+"/token", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
