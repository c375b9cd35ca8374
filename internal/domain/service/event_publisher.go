package service

import (
	"context"
	"time"
)

// BookmarkEvent is emitted every time a user bookmarks or un-bookmarks an offer
type BookmarkEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	UserKey    string    `json:"user_key"`
	OfferID    string    `json:"offer_id"`
	Liked      bool      `json:"liked"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookmarkEvent publishes a bookmark change for async consumers
	PublishBookmarkEvent(ctx context.Context, event *BookmarkEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
