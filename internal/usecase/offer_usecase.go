package usecase

import (
	"context"

	"waffer/internal/domain/entity"
)

// OfferDetails is the content of the offer detail sheet
type OfferDetails struct {
	entity.Offer
	DirectionsURL string `json:"directions_url"`
	PhoneURI      string `json:"phone_uri,omitempty"`
	ExpiresOn     string `json:"expires_on"`
	Expired       bool   `json:"expired"`
}

// CategoryView is a category with the icon hint the client renders
type CategoryView struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// OfferUsecase exposes offers outside of a map session
type OfferUsecase interface {
	GetOffer(ctx context.Context, offerID string) (*OfferDetails, error)
	ListCategories(ctx context.Context) ([]CategoryView, error)

	// OfferQR returns a PNG QR code of the offer's directions link
	OfferQR(ctx context.Context, offerID string) ([]byte, error)
}
