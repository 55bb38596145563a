package handler

import (
	"encoding/json"
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

func newUserHandlerEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/users/register", h.Register)
	e.POST("/users/login", h.Login)
	e.GET("/users/profile", h.GetProfile, asUser(userID))
	e.PUT("/users/profile", h.UpdateProfile, asUser(userID))
	e.GET("/anonymous/profile", h.GetProfile)

	return e, uc
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t, uuid.New())
		created := &entity.User{ID: uuid.New(), Username: "cat_lover", Email: "a@example.com"}
		uc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Username == "cat_lover" && in.Phone == "0501234567"
		})).Return(created, nil).Once()

		body := `{"username":"cat_lover","password":"secret123","full_name":"Cat Lover","email":"a@example.com","phone":"0501234567"}`
		req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.NotContains(t, string(env.Data), "password")

		var user entity.User
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("rejects an invalid phone before the use case", func(t *testing.T) {
		e, _ := newUserHandlerEcho(t, uuid.New())

		body := `{"username":"cat_lover","password":"secret123","full_name":"Cat Lover","email":"a@example.com","phone":"12345"}`
		req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "Phone")
	})

	t.Run("maps a duplicate to 409", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t, uuid.New())
		uc.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "username taken")).Once()

		body := `{"username":"cat_lover","password":"secret123","full_name":"Cat Lover","email":"a@example.com","phone":"0501234567"}`
		req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("returns the bearer token", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t, uuid.New())
		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "cat_lover", Password: "secret123"}).
			Return(&usecase.LoginOutput{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 3600}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":"cat_lover","password":"secret123"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out usecase.LoginOutput
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, "bearer", out.TokenType)
		assert.Equal(t, int64(3600), out.ExpiresIn)
	})

	t.Run("bad credentials are 401 without details", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t, uuid.New())
		uc.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")).Once()

		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":"cat_lover","password":"nope"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := newUserHandlerEcho(t, uuid.New())

		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestUserHandler_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("get", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t, userID)
		uc.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.User{ID: userID, Username: "cat_lover"}, nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/profile", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing user in context", func(t *testing.T) {
		e, _ := newUserHandlerEcho(t, userID)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anonymous/profile", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("update passes the patch through", func(t *testing.T) {
		e, uc := newUserHandlerEcho(t, userID)
		uc.EXPECT().UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.FullName != nil && *in.FullName == "New Name" && in.Email == nil
		})).Return(&entity.User{ID: userID, FullName: "New Name"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/users/profile", strings.NewReader(`{"full_name":"New Name"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
