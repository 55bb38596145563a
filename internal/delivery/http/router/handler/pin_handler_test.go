package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	mockUsecase "catrescue/internal/mocks/usecase"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPinHandlerEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockPinUsecase) {
	uc := mockUsecase.NewMockPinUsecase(t)
	h := NewPinHandler(PinHandlerParams{PinUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/pins", h.ListPins)
	e.GET("/pins/geojson", h.ListPinsGeoJSON)
	e.POST("/pins", h.ReportPin)
	e.PUT("/pins/:id/condition", h.UpdateCondition, asUser(userID))
	e.DELETE("/pins/:id", h.DeletePin, asUser(userID))

	return e, uc
}

func samplePins() []*entity.PinView {
	adderID := uuid.New()

	return []*entity.PinView{
		{
			CatLocation: entity.CatLocation{
				ID:        uuid.New(),
				CatID:     uuid.New(),
				Latitude:  24.7136,
				Longitude: 46.6753,
				Condition: entity.ConditionUrgent,
				UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			},
			CatName:            "Mishmish",
			AddingUserID:       &adderID,
			AddingUserUsername: "finder",
		},
		{
			CatLocation: entity.CatLocation{
				ID:        uuid.New(),
				CatID:     uuid.New(),
				Latitude:  21.4858,
				Longitude: 39.1925,
				Condition: entity.ConditionNormal,
			},
			CatName: "Stray",
		},
	}
}

func TestPinHandler_ListPins(t *testing.T) {
	e, uc := newPinHandlerEcho(t, uuid.New())
	pins := samplePins()
	uc.EXPECT().ListPins(mock.Anything).Return(pins, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pins", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Mishmish", got[0]["cat_name"])
	assert.Equal(t, "URGENT", got[0]["condition"])
	assert.Equal(t, "finder", got[0]["adding_user_username"])
}

func TestPinHandler_ListPinsGeoJSON(t *testing.T) {
	e, uc := newPinHandlerEcho(t, uuid.New())
	pins := samplePins()
	uc.EXPECT().ListPins(mock.Anything).Return(pins, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pins/geojson", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeGeoJSON, rec.Header().Get(echo.HeaderContentType))

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, orb.Point{46.6753, 24.7136}, first.Geometry)
	assert.Equal(t, pins[0].ID.String(), first.ID)
	assert.Equal(t, "Mishmish", first.Properties.MustString("cat_name"))
	assert.Equal(t, "finder", first.Properties.MustString("adding_user_username"))

	_, hasAdder := fc.Features[1].Properties["adding_user_id"]
	assert.False(t, hasAdder)
}

func TestPinHandler_ReportPin(t *testing.T) {
	catID := uuid.New()
	body := `{"cat_id":"` + catID.String() + `","latitude":24.7,"longitude":46.6}`

	t.Run("saves the pin", func(t *testing.T) {
		e, uc := newPinHandlerEcho(t, uuid.New())
		uc.EXPECT().ReportPin(mock.Anything, &usecase.ReportPinInput{CatID: catID, Latitude: 24.7, Longitude: 46.6}).
			Return(&entity.CatLocation{ID: uuid.New(), CatID: catID}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/pins", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("listed cat is 403", func(t *testing.T) {
		e, uc := newPinHandlerEcho(t, uuid.New())
		uc.EXPECT().ReportPin(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrCatListedForAdoption)).Once()

		req := httptest.NewRequest(http.MethodPost, "/pins", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "CAT_LISTED_FOR_ADOPTION", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		e, _ := newPinHandlerEcho(t, uuid.New())

		req := httptest.NewRequest(http.MethodPost, "/pins",
			strings.NewReader(`{"cat_id":"`+catID.String()+`","latitude":95,"longitude":46.6}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPinHandler_UpdateCondition(t *testing.T) {
	userID := uuid.New()
	pinID := uuid.New()

	t.Run("passes actor and pin through", func(t *testing.T) {
		e, uc := newPinHandlerEcho(t, userID)
		uc.EXPECT().UpdateCondition(mock.Anything, userID, pinID, &usecase.UpdateConditionInput{
			Condition:   entity.ConditionAtVet,
			Description: "checkup",
		}).Return(&entity.CatLocation{ID: pinID, Condition: entity.ConditionAtVet}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/pins/"+pinID.String()+"/condition",
			strings.NewReader(`{"condition":"AT VET","description":"checkup"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid pin id", func(t *testing.T) {
		e, _ := newPinHandlerEcho(t, userID)

		req := httptest.NewRequest(http.MethodPut, "/pins/not-a-uuid/condition", strings.NewReader(`{"condition":"URGENT"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("terminal condition by a stranger", func(t *testing.T) {
		e, uc := newPinHandlerEcho(t, userID)
		uc.EXPECT().UpdateCondition(mock.Anything, userID, pinID, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrNotCatOwner)).Once()

		req := httptest.NewRequest(http.MethodPut, "/pins/"+pinID.String()+"/condition", strings.NewReader(`{"condition":"ADOPTED"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPinHandler_DeletePin(t *testing.T) {
	userID := uuid.New()
	pinID := uuid.New()

	e, uc := newPinHandlerEcho(t, userID)
	uc.EXPECT().DeletePin(mock.Anything, userID, pinID).Return(nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/pins/"+pinID.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}
