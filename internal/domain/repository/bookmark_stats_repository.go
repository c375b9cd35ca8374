package repository

import (
	"context"

	"waffer/internal/domain/service"
)

// BookmarkStatsRepository maintains the per-offer bookmark counters.
type BookmarkStatsRepository interface {
	// ApplyBookmarkEvent adjusts the offer's counter once per event ID.
	// It reports false when the event was already applied and
	// returns ErrOfferNotFound when the offer document does not exist.
	ApplyBookmarkEvent(ctx context.Context, event *service.BookmarkEvent) (bool, error)
}
