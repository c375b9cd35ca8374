package service

import (
	"context"

	"waffer/internal/domain/entity"
)

// IdentityProvider verifies a bearer token and returns the signed-in user
type IdentityProvider interface {
	Identify(ctx context.Context, token string) (*entity.Identity, error)
}
