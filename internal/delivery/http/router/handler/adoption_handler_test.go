package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	mockUsecase "catrescue/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdoptionListingHandler_GetListingQRCode(t *testing.T) {
	uc := mockUsecase.NewMockAdoptionListingUsecase(t)
	h := NewAdoptionListingHandler(AdoptionListingHandlerParams{ListingUC: uc, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/adoptions/:id/qrcode", h.GetListingQRCode)

	listingID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().GetListingQRCode(mock.Anything, listingID).Return(png, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adoptions/"+listingID.String()+"/qrcode", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimePNG, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	missingID := uuid.New()
	uc.EXPECT().GetListingQRCode(mock.Anything, missingID).
		Return(nil, errors.WithStack(domainerrors.ErrListingNotFound)).Once()

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adoptions/"+missingID.String()+"/qrcode", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdoptionListingHandler_CreateListing(t *testing.T) {
	userID := uuid.New()
	catID := uuid.New()
	uc := mockUsecase.NewMockAdoptionListingUsecase(t)
	h := NewAdoptionListingHandler(AdoptionListingHandlerParams{ListingUC: uc, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/adoptions", h.CreateListing, asUser(userID))

	uc.EXPECT().CreateListing(mock.Anything, userID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrCatInStreetLocation)).Once()

	req := httptest.NewRequest(http.MethodPost, "/adoptions",
		strings.NewReader(`{"cat_id":"`+catID.String()+`","vaccinated":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CAT_IN_STREET_LOCATION", decodeEnvelope(t, rec).Error.Code)
}

func newRequestHandlerEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockAdoptionRequestUsecase) {
	uc := mockUsecase.NewMockAdoptionRequestUsecase(t)
	h := NewAdoptionRequestHandler(AdoptionRequestHandlerParams{RequestUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/adoption-requests", asUser(userID))
	g.POST("", h.CreateRequest)
	g.GET("/incoming", h.ListIncomingPending)
	g.PUT("/action", h.ApplyAction)
	g.GET("/:id", h.GetRequest)
	g.DELETE("/:id", h.DeleteRequest)

	return e, uc
}

func TestAdoptionRequestHandler_ApplyAction(t *testing.T) {
	userID := uuid.New()
	requestID := uuid.New()

	t.Run("accepts", func(t *testing.T) {
		e, uc := newRequestHandlerEcho(t, userID)
		uc.EXPECT().ApplyAction(mock.Anything, userID, requestID, entity.RequestStatusAccepted).
			Return(&entity.AdoptionRequest{ID: requestID, Status: entity.RequestStatusAccepted}, nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
			"/adoption-requests/action?request_id="+requestID.String()+"&action=Accepted", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Request Accepted", decodeEnvelope(t, rec).Message)
	})

	t.Run("unknown action is left to the use case", func(t *testing.T) {
		e, uc := newRequestHandlerEcho(t, userID)
		uc.EXPECT().ApplyAction(mock.Anything, userID, requestID, entity.RequestStatus("Maybe")).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidAction)).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
			"/adoption-requests/action?request_id="+requestID.String()+"&action=Maybe", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad request id", func(t *testing.T) {
		e, _ := newRequestHandlerEcho(t, userID)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/adoption-requests/action?request_id=x&action=Accepted", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAdoptionRequestHandler_CreateRequest_Validation(t *testing.T) {
	e, _ := newRequestHandlerEcho(t, uuid.New())

	body := `{"listing_id":"` + uuid.NewString() + `","city":"Riyadh","age":30,"full_name":"A B",` +
		`"reason_for_adoption":"love cats","living_situation":"house","experience_level":"Expert"}`
	req := httptest.NewRequest(http.MethodPost, "/adoption-requests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestAdoptionRequestHandler_GetRequest_Forbidden(t *testing.T) {
	userID := uuid.New()
	requestID := uuid.New()
	e, uc := newRequestHandlerEcho(t, userID)
	uc.EXPECT().GetRequest(mock.Anything, userID, requestID).
		Return(nil, errors.WithStack(domainerrors.ErrForbidden)).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adoption-requests/"+requestID.String(), nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
