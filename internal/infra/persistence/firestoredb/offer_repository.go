package firestoredb

import (
	"context"
	"log/slog"

	"waffer/config"
	"waffer/internal/domain/entity"
	"waffer/internal/domain/repository"
	"waffer/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// offerRepository implements the domain.OfferRepository interface on the posts collection.
type offerRepository struct {
	client             *firestore.Client
	categoryDocumentID string
	logger             *slog.Logger
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.OfferRepository {
	return &offerRepository{
		client:             client,
		categoryDocumentID: cfg.MapView.CategoryDocumentID,
		logger:             logger,
	}
}

// offerSnapshot is the part of a document snapshot needed to decode an offer
type offerSnapshot struct {
	id   string
	data interface{ DataTo(p any) error }
}

// ListPublished retrieves every offer flagged active and not canceled.
func (repo *offerRepository) ListPublished(ctx context.Context) ([]entity.Offer, error) {
	snapshots, err := repo.client.Collection(PostsCollection).
		Where("isActive", "==", true).
		Where("canceled", "==", false).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query published offers")
	}

	raw := make([]offerSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		raw = append(raw, offerSnapshot{id: snapshot.Ref.ID, data: snapshot})
	}

	return decodeOffers(raw, repo.logger), nil
}

// decodeOffers skips documents that do not decode so one bad post cannot hide the rest
func decodeOffers(snapshots []offerSnapshot, logger *slog.Logger) []entity.Offer {
	offers := make([]entity.Offer, 0, len(snapshots))
	for _, snapshot := range snapshots {
		var doc model.OfferDocument
		if err := snapshot.data.DataTo(&doc); err != nil {
			logger.Warn("Skipping malformed offer document",
				slog.String("offer_id", snapshot.id),
				slog.Any("error", errors.WithStack(err)),
			)

			continue
		}
		offers = append(offers, doc.ToEntity(snapshot.id))
	}

	return offers
}

// FindByID retrieves one offer document.
func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	snapshot, err := repo.client.Collection(PostsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	var doc model.OfferDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode offer %s", id)
	}
	offer := doc.ToEntity(id)

	return &offer, nil
}

// ListCategories retrieves the flat category list document.
func (repo *offerRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	snapshot, err := repo.client.Collection(CategoriesCollection).Doc(repo.categoryDocumentID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCategoriesNotFound
		}

		return nil, errors.Wrap(err, "failed to get categories")
	}

	var doc model.CategoryListDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode categories")
	}

	return doc.ToEntities(), nil
}
