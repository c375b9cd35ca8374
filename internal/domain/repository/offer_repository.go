// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"waffer/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCategoriesNotFound is returned when the category list document does not exist.
var ErrCategoriesNotFound = errors.New("category document not found")

// OfferRepository defines read access to the offers document collection.
type OfferRepository interface {
	// ListPublished retrieves every offer flagged active and not canceled.
	// Expiry filtering is left to the caller, see entity.ActiveAt.
	ListPublished(ctx context.Context) ([]entity.Offer, error)

	// FindByID retrieves one offer regardless of its flags.
	// Returns ErrOfferNotFound when the document does not exist.
	FindByID(ctx context.Context, id string) (*entity.Offer, error)

	// ListCategories retrieves the flat category list document.
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// ErrOfferNotFound is returned when an offer document does not exist.
var ErrOfferNotFound = errors.New("offer not found")
