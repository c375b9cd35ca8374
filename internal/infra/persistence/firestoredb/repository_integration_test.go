package firestoredb

import (
	"context"
	"os"
	"testing"
	"time"

	"waffer/config"
	"waffer/internal/domain/entity"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// newEmulatorClient connects to the Firestore emulator; the tests are skipped without one.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "waffer-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestOfferRepository_Integration(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	categoryDoc := uuid.NewString()
	repo := NewOfferRepository(client, &config.Config{MapView: &config.MapViewConfig{CategoryDocumentID: categoryDoc}}, newTestLogger())

	_, err := repo.ListCategories(ctx)
	require.ErrorIs(t, err, repository.ErrCategoriesNotFound)

	_, err = client.Collection(CategoriesCollection).Doc(categoryDoc).Set(ctx, map[string]any{
		"categories_array": []map[string]any{{"name": "مطاعم"}, {"name": "مقاهي"}},
	})
	require.NoError(t, err)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Category{{Name: "مطاعم"}, {Name: "مقاهي"}}, categories)

	published := uuid.NewString()
	canceled := uuid.NewString()
	for id, flags := range map[string][2]bool{published: {true, false}, canceled: {true, true}} {
		_, err := client.Collection(PostsCollection).Doc(id).Set(ctx, map[string]any{
			"prod_name": "offer " + id,
			"category":  "مطاعم",
			"location":  &latlng.LatLng{Latitude: 36.8, Longitude: 10.18},
			"end_date":  time.Now().Add(time.Hour),
			"old_price": 12, // stored as an integer
			"isActive":  flags[0],
			"canceled":  flags[1],
		})
		require.NoError(t, err)
	}

	malformed := uuid.NewString()
	_, err = client.Collection(PostsCollection).Doc(malformed).Set(ctx, map[string]any{
		"prod_name": 42,
		"location":  "not a geopoint",
		"isActive":  true,
		"canceled":  false,
	})
	require.NoError(t, err)

	offers, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(offers))
	for _, offer := range offers {
		ids = append(ids, offer.ID)
	}
	assert.Contains(t, ids, published)
	assert.NotContains(t, ids, canceled)
	assert.NotContains(t, ids, malformed)

	offer, err := repo.FindByID(ctx, published)
	require.NoError(t, err)
	assert.InDelta(t, 12, offer.Pricing.OldPrice, 0)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrOfferNotFound)
}

func TestUserRepository_Integration(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewUserRepository(client)
	key := uuid.NewString() + "@example.com"

	liked, err := repo.LikedPosts(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, liked)

	profile := &entity.UserProfile{Key: key, Name: "Amel", Email: key, CreatedAt: time.Now()}
	require.NoError(t, repo.EnsureUser(ctx, profile))
	require.NoError(t, repo.EnsureUser(ctx, profile))

	isLiked, err := repo.ToggleLikedPost(ctx, key, "post-1")
	require.NoError(t, err)
	assert.True(t, isLiked)

	liked, err = repo.LikedPosts(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-1"}, liked)

	isLiked, err = repo.ToggleLikedPost(ctx, key, "post-1")
	require.NoError(t, err)
	assert.False(t, isLiked)

	liked, err = repo.LikedPosts(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestBookmarkStatsRepository_Integration(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewBookmarkStatsRepository(client)
	offers := NewOfferRepository(client, &config.Config{MapView: &config.MapViewConfig{}}, newTestLogger())

	offerID := uuid.NewString()
	_, err := client.Collection(PostsCollection).Doc(offerID).Set(ctx, map[string]any{"prod_name": "offer"})
	require.NoError(t, err)

	liked := &service.BookmarkEvent{EventID: uuid.NewString(), UserKey: "amel@example.com", OfferID: offerID, Liked: true}
	applied, err := repo.ApplyBookmarkEvent(ctx, liked)
	require.NoError(t, err)
	assert.True(t, applied)

	// redelivery
	applied, err = repo.ApplyBookmarkEvent(ctx, liked)
	require.NoError(t, err)
	assert.False(t, applied)

	offer, err := offers.FindByID(ctx, offerID)
	require.NoError(t, err)
	assert.Equal(t, 1, offer.BookmarkCount)

	unliked := &service.BookmarkEvent{EventID: uuid.NewString(), UserKey: "amel@example.com", OfferID: offerID}
	_, err = repo.ApplyBookmarkEvent(ctx, unliked)
	require.NoError(t, err)

	offer, err = offers.FindByID(ctx, offerID)
	require.NoError(t, err)
	assert.Equal(t, 0, offer.BookmarkCount)

	_, err = repo.ApplyBookmarkEvent(ctx, &service.BookmarkEvent{EventID: uuid.NewString(), OfferID: uuid.NewString()})
	assert.ErrorIs(t, err, repository.ErrOfferNotFound)
}
