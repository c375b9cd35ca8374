package entity

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestActiveAt_ExcludesExpiredOffers(t *testing.T) {
	now := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	offers := []Offer{
		{ID: "a", EndDate: now.Add(-24 * time.Hour)},
		{ID: "b", EndDate: now.Add(24 * time.Hour)},
		{ID: "c", EndDate: now},
		{ID: "d", EndDate: now.Add(-time.Nanosecond)},
	}

	active := ActiveAt(offers, now)

	ids := make([]string, 0, len(active))
	for _, offer := range active {
		ids = append(ids, offer.ID)
	}
	assert.Equal(t, []string{"b", "c"}, ids)
}

func TestOffer_Links(t *testing.T) {
	offer := Offer{Position: orb.Point{10.1815, 36.8065}, Phone: "+21671000000"}

	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=36.8065,10.1815", offer.DirectionsURL())
	assert.Equal(t, "tel:+21671000000", offer.PhoneURI())

	offer.Phone = ""
	assert.Empty(t, offer.PhoneURI())
}

func TestCategory_IconHint(t *testing.T) {
	assert.Equal(t, "restaurant", Category{Name: "مطاعم"}.IconHint())
	assert.Equal(t, "custom", Category{Name: "مطاعم", Icon: "custom"}.IconHint())
	assert.Equal(t, "category", Category{Name: "رياضة"}.IconHint())
}

func TestIdentity_KeyIsLowercased(t *testing.T) {
	identity := Identity{Email: "  Amine.Ben@Example.COM "}
	assert.Equal(t, "amine.ben@example.com", identity.Key())
}
