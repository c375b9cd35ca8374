// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// UserProfile is the per-user document keyed by lower-cased email.
type UserProfile struct {
	Key        string    // Document key, see UserKey.
	Name       string    // Display name captured at first sign-in.
	Email      string    // Email as reported by the identity provider.
	LikedPosts []string  // Bookmarked offer identifiers.
	CreatedAt  time.Time // Timestamp of when the profile document was created.
}

// HasLiked reports whether the offer is bookmarked by this user
func (p *UserProfile) HasLiked(offerID string) bool {
	return slices.Contains(p.LikedPosts, offerID)
}
