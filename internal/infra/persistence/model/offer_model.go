package model

import (
	"time"

	"waffer/internal/domain/entity"

	"github.com/paulmach/orb"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// OfferDocument mirrors a document of the 'posts' collection.
type OfferDocument struct {
	ProdName     string         `firestore:"prod_name"`
	ShopName     string         `firestore:"shop_name"`
	Category     string         `firestore:"category"`
	Location     *latlng.LatLng `firestore:"location"`
	EndDate      time.Time      `firestore:"end_date"`
	Thumbnail    string         `firestore:"thumbnail"`
	DiscountType string         `firestore:"discount_type"`
	OldPrice     float64        `firestore:"old_price"`
	NewPrice     float64        `firestore:"new_price"`
	Percentage   float64        `firestore:"percentage"`
	Phone        string         `firestore:"phone"`
	Address      string         `firestore:"address"`
	Images       []string       `firestore:"images"`
	IsActive     bool           `firestore:"isActive"`
	Canceled     bool           `firestore:"canceled"`
	LikesCount   int            `firestore:"likes_count"`
}

// ToEntity maps the document to a domain offer. A missing location maps to (0, 0).
func (d *OfferDocument) ToEntity(id string) entity.Offer {
	var position orb.Point
	if d.Location != nil {
		position = orb.Point{d.Location.GetLongitude(), d.Location.GetLatitude()}
	}

	return entity.Offer{
		ID:        id,
		ProdName:  d.ProdName,
		ShopName:  d.ShopName,
		Category:  d.Category,
		Position:  position,
		EndDate:   d.EndDate,
		Thumbnail: d.Thumbnail,
		Pricing: entity.Pricing{
			DiscountType: entity.DiscountType(d.DiscountType),
			OldPrice:     d.OldPrice,
			NewPrice:     d.NewPrice,
			Percentage:   d.Percentage,
		},
		Phone:   d.Phone,
		Address: d.Address,
		Images:  d.Images,

		BookmarkCount: max(d.LikesCount, 0),
	}
}

// CategoryDocument is one entry of the category list.
type CategoryDocument struct {
	Name string `firestore:"name"`
	Icon string `firestore:"icon,omitempty"`
}

// CategoryListDocument mirrors the single document of the 'categories' collection.
type CategoryListDocument struct {
	Categories []CategoryDocument `firestore:"categories_array"`
}

// ToEntities maps the list to domain categories, skipping unnamed entries.
func (d *CategoryListDocument) ToEntities() []entity.Category {
	categories := make([]entity.Category, 0, len(d.Categories))
	for _, category := range d.Categories {
		if category.Name == "" {
			continue
		}
		categories = append(categories, entity.Category{Name: category.Name, Icon: category.Icon})
	}

	return categories
}
