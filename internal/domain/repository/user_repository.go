package repository

import (
	"context"

	"waffer/internal/domain/entity"
)

// UserRepository defines the operations on per-user profile documents.
// Every method takes the document key produced by entity.UserKey.
type UserRepository interface {
	// LikedPosts returns the bookmarked offer IDs; a missing profile yields an empty list.
	LikedPosts(ctx context.Context, userKey string) ([]string, error)

	// EnsureUser creates the profile document when it does not exist yet.
	EnsureUser(ctx context.Context, profile *entity.UserProfile) error

	// ToggleLikedPost atomically adds or removes the offer from the liked list
	// and reports whether the offer is liked afterwards.
	ToggleLikedPost(ctx context.Context, userKey, offerID string) (bool, error)
}
