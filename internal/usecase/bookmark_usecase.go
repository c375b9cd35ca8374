package usecase

import (
	"context"

	"waffer/internal/domain/entity"
)

// BookmarkUsecase manages the liked offers of signed-in users.
// Every method fails with ErrAuthRequired when identity is nil.
type BookmarkUsecase interface {
	// Toggle flips the bookmark and reports whether the offer is bookmarked afterwards
	Toggle(ctx context.Context, identity *entity.Identity, offerID string) (bool, error)
	IsBookmarked(ctx context.Context, identity *entity.Identity, offerID string) (bool, error)
	LikedOffers(ctx context.Context, identity *entity.Identity) ([]string, error)
}
