package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	mockUsecase "catrescue/internal/mocks/usecase"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityHandler(t *testing.T) {
	userID := uuid.New()
	catID := uuid.New()

	setup := func(t *testing.T) (*echo.Echo, *mockUsecase.MockActivityUsecase) {
		uc := mockUsecase.NewMockActivityUsecase(t)
		h := NewActivityHandler(ActivityHandlerParams{ActivityUC: uc, Logger: newDiscardLogger()})

		e := newTestEcho()
		e.GET("/activity/cat/:id", h.ListCatActivity, asUser(userID))
		e.GET("/activity/cat/:id/public", h.ListPublicCatActivity)
		e.POST("/activity", h.AddContribution, asUser(userID))

		return e, uc
	}

	t.Run("public trail needs no user", func(t *testing.T) {
		e, uc := setup(t)
		uc.EXPECT().ListPublicCatActivity(mock.Anything, catID).
			Return([]*entity.ActivityLog{{ID: uuid.New(), CatID: catID}}, nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activity/cat/"+catID.String()+"/public", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("listed cat trail is restricted", func(t *testing.T) {
		e, uc := setup(t)
		uc.EXPECT().ListCatActivity(mock.Anything, userID, catID).
			Return(nil, errors.WithStack(domainerrors.ErrForbidden)).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activity/cat/"+catID.String(), nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("contribution blocked", func(t *testing.T) {
		e, uc := setup(t)
		uc.EXPECT().AddContribution(mock.Anything, userID, &usecase.AddContributionInput{CatID: catID, Description: "fed her"}).
			Return(nil, errors.WithStack(domainerrors.ErrContributionBlocked)).Once()

		req := httptest.NewRequest(http.MethodPost, "/activity",
			strings.NewReader(`{"cat_id":"`+catID.String()+`","activity_description":"fed her"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "CONTRIBUTION_BLOCKED", decodeEnvelope(t, rec).Error.Code)
	})
}
