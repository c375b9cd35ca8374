package entity

import "strings"

// Identity is the signed-in user as reported by the identity provider
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Key returns the document key of the user's profile (lower-cased email)
func (i *Identity) Key() string {
	return UserKey(i.Email)
}

// UserKey derives the profile document key from an email address
func UserKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
