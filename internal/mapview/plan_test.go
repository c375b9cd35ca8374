package mapview

import (
	"testing"

	"waffer/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPlanVisibility_CategoryExactSet(t *testing.T) {
	offers := []entity.Offer{
		offerAt("r1", "مطاعم", 10.1, 36.8),
		offerAt("c1", "مقاهي", 10.2, 36.8),
		offerAt("r2", "مطاعم", 10.3, 36.8),
		offerAt("g1", "مواد غذائية", 10.4, 36.8),
	}

	plan := PlanVisibility(offers, CategoryFilter("مطاعم"), []string{"g1", "r2", "c1", "r1"})

	assert.Equal(t, []string{"r1", "r2"}, plan.Show)
	assert.Equal(t, []string{"c1", "g1"}, plan.Hide)
	assert.Len(t, plan.Visible, 2)
}

func TestPlanVisibility_AllCategories(t *testing.T) {
	offers := []entity.Offer{offerAt("a", "مطاعم", 0, 0), offerAt("b", "ملابس", 0, 0)}

	for _, filter := range []Filter{CategoryFilter(entity.AllCategories), {}} {
		plan := PlanVisibility(offers, filter, []string{"a", "b"})

		assert.Equal(t, []string{"a", "b"}, plan.Show)
		assert.Empty(t, plan.Hide)
	}
}

func TestPlanVisibility_HidesKnownMarkersMissingFromOffers(t *testing.T) {
	offers := []entity.Offer{offerAt("a", "مطاعم", 0, 0)}

	plan := PlanVisibility(offers, CategoryFilter(entity.AllCategories), []string{"a", "expired"})

	assert.Equal(t, []string{"a"}, plan.Show)
	assert.Equal(t, []string{"expired"}, plan.Hide)
}

func TestPlanVisibility_VisibleIncludesOffersWithoutMarkers(t *testing.T) {
	offers := []entity.Offer{offerAt("a", "مطاعم", 0, 0), offerAt("pending", "مطاعم", 0, 0)}

	plan := PlanVisibility(offers, CategoryFilter("مطاعم"), []string{"a"})

	assert.Equal(t, []string{"a"}, plan.Show)
	assert.Len(t, plan.Visible, 2)
}

func TestFilter_SavedWithCategory(t *testing.T) {
	filter := CategoryFilter("مطاعم").WithSaved([]string{"a", "c"})

	assert.True(t, filter.Match(&entity.Offer{ID: "a", Category: "مطاعم"}))
	assert.False(t, filter.Match(&entity.Offer{ID: "b", Category: "مطاعم"}))
	assert.False(t, filter.Match(&entity.Offer{ID: "c", Category: "مقاهي"}))
}
