package firestoredb

import (
	"context"
	"time"

	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"
	"waffer/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// bookmarkStatsRepository implements the domain.BookmarkStatsRepository interface.
type bookmarkStatsRepository struct {
	client *firestore.Client
	clock  func() time.Time
}

// NewBookmarkStatsRepository is the constructor for bookmarkStatsRepository.
func NewBookmarkStatsRepository(client *firestore.Client) repository.BookmarkStatsRepository {
	return &bookmarkStatsRepository{client: client, clock: time.Now}
}

// ApplyBookmarkEvent records the event and moves the offer's likes_count in one transaction.
func (repo *bookmarkStatsRepository) ApplyBookmarkEvent(ctx context.Context, event *service.BookmarkEvent) (bool, error) {
	eventRef := repo.client.Collection(BookmarkEventsCollection).Doc(event.EventID)
	offerRef := repo.client.Collection(PostsCollection).Doc(event.OfferID)

	var applied bool
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		applied = false

		if _, err := tx.Get(eventRef); err == nil {
			return nil
		} else if !isNotFound(err) {
			return err
		}

		if _, err := tx.Get(offerRef); err != nil {
			if isNotFound(err) {
				return repository.ErrOfferNotFound
			}

			return err
		}

		if err := tx.Create(eventRef, model.FromBookmarkEvent(event, repo.clock())); err != nil {
			return err
		}
		applied = true

		return tx.Update(offerRef, []firestore.Update{
			{Path: "likes_count", Value: firestore.Increment(model.CounterDelta(event.Liked))},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return false, err
		}

		return false, errors.Wrapf(err, "failed to apply bookmark event %s", event.EventID)
	}

	return applied, nil
}
