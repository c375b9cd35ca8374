package model

import (
	"time"

	"waffer/internal/domain/service"
)

// BookmarkEventDocument records a bookmark event already applied to the counters.
// Its document ID is the event ID.
type BookmarkEventDocument struct {
	OfferID     string    `firestore:"offer_id"`
	UserKey     string    `firestore:"user_key"`
	Liked       bool      `firestore:"liked"`
	OccurredAt  time.Time `firestore:"occurred_at"`
	ProcessedAt time.Time `firestore:"processed_at"`
}

// FromBookmarkEvent maps an event to its processing record
func FromBookmarkEvent(event *service.BookmarkEvent, processedAt time.Time) *BookmarkEventDocument {
	return &BookmarkEventDocument{
		OfferID:     event.OfferID,
		UserKey:     event.UserKey,
		Liked:       event.Liked,
		OccurredAt:  event.OccurredAt,
		ProcessedAt: processedAt,
	}
}

// CounterDelta is the change an event applies to the offer's bookmark counter
func CounterDelta(liked bool) int {
	if liked {
		return 1
	}

	return -1
}
