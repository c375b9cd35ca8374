package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "waffer/internal/delivery/context"
	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"
	"waffer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	users     repository.UserRepository
	offers    repository.OfferRepository
	publisher service.EventPublisher
	clock     func() time.Time
	logger    *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(
	users repository.UserRepository,
	offers repository.OfferRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.BookmarkUsecase {
	return &bookmarkService{
		users:     users,
		offers:    offers,
		publisher: publisher,
		clock:     time.Now,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the bookmark of an existing offer, creating the user's profile on first use.
// The change is published as a BookmarkEvent; a publish failure does not fail the toggle.
func (srv *bookmarkService) Toggle(ctx context.Context, identity *entity.Identity, offerID string) (bool, error) {
	if identity == nil {
		return false, domainerrors.ErrAuthRequired
	}

	if _, err := srv.offers.FindByID(ctx, offerID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return false, domainerrors.ErrOfferNotFound
		}

		return false, domainerrors.NewDocumentStoreError(err, "find offer")
	}

	now := srv.clock()
	profile := &entity.UserProfile{
		Key:       identity.Key(),
		Name:      identity.Name,
		Email:     identity.Email,
		CreatedAt: now,
	}
	if err := srv.users.EnsureUser(ctx, profile); err != nil {
		return false, domainerrors.NewDocumentStoreError(err, "ensure user")
	}

	liked, err := srv.users.ToggleLikedPost(ctx, profile.Key, offerID)
	if err != nil {
		return false, domainerrors.NewDocumentStoreError(err, "toggle liked post")
	}

	event := &service.BookmarkEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		UserKey:    profile.Key,
		OfferID:    offerID,
		Liked:      liked,
		OccurredAt: now,
	}
	if err := srv.publisher.PublishBookmarkEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish bookmark event",
			slog.String("offer_id", offerID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Bookmark toggled",
		slog.String("offer_id", offerID),
		slog.Bool("liked", liked),
	)

	return liked, nil
}

// IsBookmarked reports whether the user bookmarked the offer.
func (srv *bookmarkService) IsBookmarked(ctx context.Context, identity *entity.Identity, offerID string) (bool, error) {
	liked, err := srv.LikedOffers(ctx, identity)
	if err != nil {
		return false, err
	}

	return slices.Contains(liked, offerID), nil
}

// LikedOffers returns the bookmarked offer IDs of the user.
func (srv *bookmarkService) LikedOffers(ctx context.Context, identity *entity.Identity) ([]string, error) {
	if identity == nil {
		return nil, domainerrors.ErrAuthRequired
	}

	liked, err := srv.users.LikedPosts(ctx, identity.Key())
	if err != nil {
		return nil, domainerrors.NewDocumentStoreError(err, "list liked posts")
	}

	return liked, nil
}
