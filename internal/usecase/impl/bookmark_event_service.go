package impl

import (
	"context"
	"log/slog"

	deliverycontext "waffer/internal/delivery/context"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"
	"waffer/internal/usecase"

	"github.com/pkg/errors"
)

// bookmarkEventService implements the BookmarkEventUsecase interface.
type bookmarkEventService struct {
	stats  repository.BookmarkStatsRepository
	logger *slog.Logger
}

// NewBookmarkEventService is the constructor for bookmarkEventService.
func NewBookmarkEventService(stats repository.BookmarkStatsRepository, logger *slog.Logger) usecase.BookmarkEventUsecase {
	return &bookmarkEventService{stats: stats, logger: logger}
}

// HandleBookmarkEvent applies one event; redeliveries of an applied event are no-ops.
func (srv *bookmarkEventService) HandleBookmarkEvent(ctx context.Context, event *service.BookmarkEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("event_id", event.EventID),
		slog.String("offer_id", event.OfferID),
	)

	if event.EventID == "" || event.OfferID == "" || event.UserKey == "" {
		return domainerrors.ErrValidationFailed.WithDetails("bookmark event needs event_id, offer_id and user_key")
	}

	applied, err := srv.stats.ApplyBookmarkEvent(ctx, event)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			logger.Warn("Bookmark event for a deleted offer")

			return domainerrors.ErrOfferNotFound
		}

		return domainerrors.NewDocumentStoreError(err, "apply bookmark event")
	}

	if !applied {
		logger.Debug("Bookmark event already applied")

		return nil
	}
	logger.Info("Bookmark counter updated", slog.Bool("liked", event.Liked))

	return nil
}
