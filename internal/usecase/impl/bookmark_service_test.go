package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "waffer/internal/delivery/context"
	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"
	mockRepo "waffer/internal/mocks/repository"
	mockSvc "waffer/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookmarkFixture struct {
	srv       *bookmarkService
	users     *mockRepo.MockUserRepository
	offers    *mockRepo.MockOfferRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestBookmarkService(t *testing.T) *bookmarkFixture {
	fx := &bookmarkFixture{
		users:     mockRepo.NewMockUserRepository(t),
		offers:    mockRepo.NewMockOfferRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.srv = NewBookmarkService(fx.users, fx.offers, fx.publisher, newTestLogger()).(*bookmarkService)
	fx.srv.clock = func() time.Time { return testNow }

	return fx
}

func TestBookmarkService_Toggle(t *testing.T) {
	fx := createTestBookmarkService(t)
	identity := &entity.Identity{Email: " Amel@Example.com", Name: "Amel"}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	fx.offers.EXPECT().FindByID(mock.Anything, "o1").Return(&entity.Offer{ID: "o1"}, nil)
	fx.users.EXPECT().EnsureUser(mock.Anything, &entity.UserProfile{
		Key:       "amel@example.com",
		Name:      "Amel",
		Email:     " Amel@Example.com",
		CreatedAt: testNow,
	}).Return(nil)
	fx.users.EXPECT().ToggleLikedPost(mock.Anything, "amel@example.com", "o1").Return(true, nil)
	fx.publisher.EXPECT().PublishBookmarkEvent(mock.Anything, mock.MatchedBy(func(event *service.BookmarkEvent) bool {
		return event.RequestID == "req-1" &&
			event.EventID != "" &&
			event.UserKey == "amel@example.com" &&
			event.OfferID == "o1" &&
			event.Liked &&
			event.OccurredAt.Equal(testNow)
	})).Return(nil)

	liked, err := fx.srv.Toggle(ctx, identity, "o1")
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestBookmarkService_ToggleToleratesPublishFailure(t *testing.T) {
	fx := createTestBookmarkService(t)
	identity := &entity.Identity{Email: "amel@example.com"}

	fx.offers.EXPECT().FindByID(mock.Anything, "o1").Return(&entity.Offer{ID: "o1"}, nil)
	fx.users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(nil)
	fx.users.EXPECT().ToggleLikedPost(mock.Anything, "amel@example.com", "o1").Return(false, nil)
	fx.publisher.EXPECT().PublishBookmarkEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	liked, err := fx.srv.Toggle(context.Background(), identity, "o1")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestBookmarkService_ToggleErrors(t *testing.T) {
	identity := &entity.Identity{Email: "amel@example.com"}

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestBookmarkService(t)

		_, err := fx.srv.Toggle(context.Background(), nil, "o1")
		assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
	})

	t.Run("unknown offer", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.offers.EXPECT().FindByID(mock.Anything, "gone").Return(nil, repository.ErrOfferNotFound)

		_, err := fx.srv.Toggle(context.Background(), identity, "gone")
		assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
	})

	t.Run("transaction failure", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.offers.EXPECT().FindByID(mock.Anything, "o1").Return(&entity.Offer{ID: "o1"}, nil)
		fx.users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(nil)
		fx.users.EXPECT().ToggleLikedPost(mock.Anything, "amel@example.com", "o1").Return(false, errors.New("aborted"))

		_, err := fx.srv.Toggle(context.Background(), identity, "o1")
		assert.ErrorIs(t, err, domainerrors.ErrQueryFailed)
	})
}

func TestBookmarkService_IsBookmarked(t *testing.T) {
	fx := createTestBookmarkService(t)
	identity := &entity.Identity{Email: "amel@example.com"}
	fx.users.EXPECT().LikedPosts(mock.Anything, "amel@example.com").Return([]string{"o1", "o3"}, nil)

	liked, err := fx.srv.IsBookmarked(context.Background(), identity, "o3")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = fx.srv.IsBookmarked(context.Background(), identity, "o2")
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = fx.srv.LikedOffers(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}
