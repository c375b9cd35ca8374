package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "waffer/internal/delivery/context"
	"waffer/internal/delivery/http/response"
	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	mockSvc "waffer/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Identify(t *testing.T) {
	identity := &entity.Identity{Email: "amel@example.com"}

	tests := []struct {
		name         string
		header       string
		setupMock    func(*mockSvc.MockIdentityProvider)
		wantIdentity *entity.Identity
		wantErr      error
	}{
		{
			name:      "anonymous",
			setupMock: func(*mockSvc.MockIdentityProvider) {},
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockSvc.MockIdentityProvider) {
				m.EXPECT().Identify(mock.Anything, "good").Return(identity, nil)
			},
			wantIdentity: identity,
		},
		{
			name:      "not a bearer token",
			header:    "Basic abc",
			setupMock: func(*mockSvc.MockIdentityProvider) {},
			wantErr:   domainerrors.ErrInvalidToken,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMock: func(m *mockSvc.MockIdentityProvider) {
				m.EXPECT().Identify(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken.WrapMessage("token is expired"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mockSvc.NewMockIdentityProvider(t)
			tt.setupMock(provider)
			m := NewAuthMiddleware(AuthMiddlewareParams{Identities: provider, Logger: newTestLogger()})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			var got *entity.Identity
			err := m.Identify(func(c echo.Context) error {
				got = deliverycontext.GetIdentity(c.Request().Context())

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIdentity, got)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantRedirect string
		wantDetails  any
	}{
		{
			name:         "auth required",
			err:          domainerrors.ErrAuthRequired,
			wantStatus:   http.StatusUnauthorized,
			wantCode:     "AUTH_REQUIRED",
			wantRedirect: "/login",
		},
		{
			name:        "validation details",
			err:         domainerrors.ErrValidationFailed.WithDetails("camera out of range"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "camera out of range",
		},
		{
			name:       "wrapped not found",
			err:        errors.Wrap(domainerrors.ErrSessionNotFound, "refresh"),
			wantStatus: http.StatusNotFound,
			wantCode:   "SESSION_NOT_FOUND",
		},
		{
			name:       "store failure hides details",
			err:        domainerrors.NewDocumentStoreError(errors.New("unavailable"), "list offers"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "QUERY_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()), rec)
			deliverycontext.SetRequestID(c, "req-1")

			NewErrorMiddleware(newTestLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantRedirect, body.Error.Redirect)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}
