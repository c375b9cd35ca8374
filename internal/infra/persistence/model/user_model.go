package model

import (
	"time"

	"waffer/internal/domain/entity"
)

// UserDocument mirrors a document of the 'users' collection, keyed by lower-cased email.
type UserDocument struct {
	Name       string    `firestore:"name"`
	Email      string    `firestore:"email"`
	LikedPosts []string  `firestore:"liked_posts"`
	CreatedAt  time.Time `firestore:"created_at"`
}

// FromUserProfile maps a domain profile to its document. The liked list is never nil.
func FromUserProfile(profile *entity.UserProfile) *UserDocument {
	liked := profile.LikedPosts
	if liked == nil {
		liked = []string{}
	}

	return &UserDocument{
		Name:       profile.Name,
		Email:      profile.Email,
		LikedPosts: liked,
		CreatedAt:  profile.CreatedAt,
	}
}

// ToEntity maps the document back to a domain profile.
func (d *UserDocument) ToEntity(key string) *entity.UserProfile {
	return &entity.UserProfile{
		Key:        key,
		Name:       d.Name,
		Email:      d.Email,
		LikedPosts: d.LikedPosts,
		CreatedAt:  d.CreatedAt,
	}
}
