package usecase

import (
	"context"

	"waffer/internal/domain/service"
)

// BookmarkEventUsecase consumes the bookmark events published by BookmarkUsecase
type BookmarkEventUsecase interface {
	// HandleBookmarkEvent applies the event to the offer's bookmark counter.
	// Client errors (4xx codes) are permanent; anything else may be retried.
	HandleBookmarkEvent(ctx context.Context, event *service.BookmarkEvent) error
}
