package mapview

import (
	"slices"

	"waffer/internal/domain/entity"
)

// Filter selects the offers whose markers are shown
type Filter struct {
	Category  string // entity.AllCategories or empty matches every category
	SavedOnly bool
	Saved     map[string]struct{}
}

// CategoryFilter shows the offers of one category
func CategoryFilter(category string) Filter {
	return Filter{Category: category}
}

// WithSaved restricts the filter to the given offer identities
func (f Filter) WithSaved(offerIDs []string) Filter {
	saved := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		saved[id] = struct{}{}
	}
	f.SavedOnly = true
	f.Saved = saved

	return f
}

// Match reports whether the offer passes the filter
func (f Filter) Match(offer *entity.Offer) bool {
	if f.Category != "" && f.Category != entity.AllCategories && offer.Category != f.Category {
		return false
	}
	if f.SavedOnly {
		_, ok := f.Saved[offer.ID]

		return ok
	}

	return true
}

// VisibilityPlan is the target marker state of one reconciliation
type VisibilityPlan struct {
	// Offers passing the filter, in input order
	Visible []entity.Offer

	// Show and Hide partition the known identities
	Show []string
	Hide []string
}

// PlanVisibility decides which known markers are shown for offers under filter.
// Known identities absent from offers are hidden.
func PlanVisibility(offers []entity.Offer, filter Filter, known []string) VisibilityPlan {
	plan := VisibilityPlan{Visible: make([]entity.Offer, 0, len(offers))}

	visibleIDs := make(map[string]struct{}, len(offers))
	for idx := range offers {
		if filter.Match(&offers[idx]) {
			plan.Visible = append(plan.Visible, offers[idx])
			visibleIDs[offers[idx].ID] = struct{}{}
		}
	}

	for _, id := range known {
		if _, ok := visibleIDs[id]; ok {
			plan.Show = append(plan.Show, id)
		} else {
			plan.Hide = append(plan.Hide, id)
		}
	}
	slices.Sort(plan.Show)
	slices.Sort(plan.Hide)

	return plan
}
