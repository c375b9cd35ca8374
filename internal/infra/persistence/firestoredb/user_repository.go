package firestoredb

import (
	"context"
	"slices"

	"waffer/internal/domain/entity"
	"waffer/internal/domain/repository"
	"waffer/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// userRepository implements the domain.UserRepository interface on the users collection.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// LikedPosts returns the bookmarked offer IDs of the user.
func (repo *userRepository) LikedPosts(ctx context.Context, userKey string) ([]string, error) {
	snapshot, err := repo.client.Collection(UsersCollection).Doc(userKey).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	var doc model.UserDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", userKey)
	}
	if doc.LikedPosts == nil {
		return []string{}, nil
	}

	return doc.LikedPosts, nil
}

// EnsureUser creates the profile document; an existing document is left untouched.
func (repo *userRepository) EnsureUser(ctx context.Context, profile *entity.UserProfile) error {
	doc := model.FromUserProfile(profile)
	_, err := repo.client.Collection(UsersCollection).Doc(profile.Key).Create(ctx, doc)
	if err != nil && !isAlreadyExists(err) {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// ToggleLikedPost flips the offer in the liked list inside a transaction.
func (repo *userRepository) ToggleLikedPost(ctx context.Context, userKey, offerID string) (bool, error) {
	ref := repo.client.Collection(UsersCollection).Doc(userKey)

	var liked bool
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snapshot, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var doc model.UserDocument
		if err := snapshot.DataTo(&doc); err != nil {
			return err
		}

		if slices.Contains(doc.LikedPosts, offerID) {
			liked = false

			return tx.Update(ref, []firestore.Update{{Path: "liked_posts", Value: firestore.ArrayRemove(offerID)}})
		}
		liked = true

		return tx.Update(ref, []firestore.Update{{Path: "liked_posts", Value: firestore.ArrayUnion(offerID)}})
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle liked post")
	}

	return liked, nil
}
