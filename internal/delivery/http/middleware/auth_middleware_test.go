package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "catrescue/internal/delivery/context"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/service"
	mockService "catrescue/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockService.MockTokenService)
		wantStatus int
	}{
		{
			name:   "valid bearer token",
			header: "Bearer good",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "scheme is case-insensitive",
			header: "bearer good",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").
					Return(nil, domainerrors.ErrInvalidToken.WrapMessage("token has expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			var seen, actor uuid.UUID
			handler := m.Authenticate(func(c echo.Context) error {
				seen, _ = UserIDFromContext(c)
				actor, _ = deliverycontext.ActorFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, seen)
				assert.Equal(t, userID, actor)
			} else {
				assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
			}
		})
	}
}
