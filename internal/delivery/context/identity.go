package context

import (
	"context"

	"waffer/internal/domain/entity"
)

// KeyIdentity is the key for storing the signed-in user's identity in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context with the identity.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity extracts the identity from context.Context.
// Anonymous requests return nil.
func GetIdentity(ctx context.Context) *entity.Identity {
	if identity, ok := ctx.Value(KeyIdentity).(*entity.Identity); ok {
		return identity
	}

	return nil
}
