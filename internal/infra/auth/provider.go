package auth

import (
	"context"
	"log/slog"

	"waffer/config"
	"waffer/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the identity provider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewIdentityProvider selects the development JWT provider when a dev secret is
// configured and Firebase Auth otherwise
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	if params.Config.Auth != nil && params.Config.Auth.DevSecret != "" {
		params.Logger.Warn("Using development JWT identity provider")

		return NewJWTService(params.Config.Auth.DevSecret)
	}

	return NewFirebaseIdentity(params.Ctx, params.App, params.Logger)
}
