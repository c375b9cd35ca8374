// Package middleware contains the echo middlewares specific to the HTTP API.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "waffer/internal/delivery/context"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Identities service.IdentityProvider
	Logger     *slog.Logger
}

// AuthMiddleware resolves the caller's identity from a bearer ID token.
type AuthMiddleware struct {
	identities service.IdentityProvider
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{identities: params.Identities, logger: params.Logger}
}

// Identify attaches the identity to the request context when a token is sent.
// Requests without an Authorization header continue anonymously; operations that
// need a user report ErrAuthRequired themselves.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || token == "" {
			return domainerrors.ErrInvalidToken.WithDetails("must be a Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.identities.Identify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected ID token", slog.Any("error", err))

			return err
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(ctx, identity)))

		return next(c)
	}
}
