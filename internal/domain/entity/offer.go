package entity

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// DiscountType discriminates how an offer's pricing is expressed
type DiscountType string

const (
	DiscountTypePrice      DiscountType = "price"
	DiscountTypePercentage DiscountType = "percentage"
)

// Pricing holds either an old/new price pair or a percentage discount
type Pricing struct {
	DiscountType DiscountType `json:"discount_type"`
	OldPrice     float64      `json:"old_price,omitempty"`
	NewPrice     float64      `json:"new_price,omitempty"`
	Percentage   float64      `json:"percentage,omitempty"`
}

// Offer is a promotional listing tied to a shop and a geographic point
type Offer struct {
	ID        string    `json:"id"`
	ProdName  string    `json:"prod_name"`
	ShopName  string    `json:"shop_name"`
	Category  string    `json:"category"`
	Position  orb.Point `json:"position"` // [lng, lat]
	EndDate   time.Time `json:"end_date"`
	Thumbnail string    `json:"thumbnail"`
	Pricing   Pricing   `json:"pricing"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Images    []string  `json:"images,omitempty"`

	// BookmarkCount is maintained asynchronously from bookmark events
	BookmarkCount int `json:"bookmark_count"`
}

// ActiveAt reports whether the offer is still valid at the given moment.
// An offer ending exactly at now is still active.
func (o *Offer) ActiveAt(now time.Time) bool {
	return !o.EndDate.Before(now)
}

// DirectionsURL returns the navigation link for the offer's position
func (o *Offer) DirectionsURL() string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", o.Position.Lat(), o.Position.Lon())
}

// PhoneURI returns a tel: link, or an empty string when the shop has no phone
func (o *Offer) PhoneURI() string {
	if o.Phone == "" {
		return ""
	}

	return "tel:" + o.Phone
}

// ActiveAt keeps the offers still valid at now, preserving order
func ActiveAt(offers []Offer, now time.Time) []Offer {
	active := make([]Offer, 0, len(offers))
	for idx := range offers {
		if offers[idx].ActiveAt(now) {
			active = append(active, offers[idx])
		}
	}

	return active
}
