package mapview

import (
	"context"
	"sync"
	"testing"
	"time"

	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"
	"waffer/internal/infra/icon"
	"waffer/internal/infra/mapsurface"
	mockRepo "waffer/internal/mocks/repository"
	mockSvc "waffer/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	session *Session
	surface *mapsurface.Memory
	repo    *mockRepo.MockOfferRepository
	fetcher *fakeFetcher
}

func createTestSession(t *testing.T) sessionFixture {
	surface := newTestSurface()
	repo := mockRepo.NewMockOfferRepository(t)
	fetcher := newFakeFetcher(t)

	session := NewSession("session-1", surface, testSettings(), SessionDeps{
		Offers:     repo,
		Fetcher:    fetcher,
		Compositor: icon.NewCompositor(),
		Logger:     newTestLogger(),
		Clock:      func() time.Time { return testNow },
	})

	return sessionFixture{session: session, surface: surface, repo: repo, fetcher: fetcher}
}

func (fx sessionFixture) expectLoad(offers []entity.Offer, categories []entity.Category) {
	fx.repo.EXPECT().ListPublished(mock.Anything).Return(offers, nil).Once()
	fx.repo.EXPECT().ListCategories(mock.Anything).Return(categories, nil).Once()
}

func TestSession_LoadExcludesExpiredOffers(t *testing.T) {
	fx := createTestSession(t)
	expired := offerAt("a", "مطاعم", 10.1, 36.8)
	expired.EndDate = testNow.Add(-24 * time.Hour)
	fx.expectLoad([]entity.Offer{expired, offerAt("b", "مطاعم", 10.2, 36.8)}, nil)

	result, err := fx.session.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, result.Created)
	assert.Equal(t, 1, fx.session.Pool().Len())
	assert.Equal(t, 1, fx.session.Snapshot().OfferCount)
}

func TestSession_LoadFallsBackToDefaultRegionOnce(t *testing.T) {
	fx := createTestSession(t)
	fx.expectLoad(restaurantsAndCafes(), []entity.Category{{Name: "مطاعم"}})

	_, err := fx.session.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, service.Camera{Center: tunis, Zoom: 7}, fx.surface.Camera())

	snapshot := fx.session.Snapshot()
	assert.Equal(t, []entity.Category{{Name: "مطاعم"}}, snapshot.Categories)
	assert.Equal(t, entity.AllCategories, snapshot.Category)
}

func TestSession_LoadAfterLocateKeepsUserCamera(t *testing.T) {
	fx := createTestSession(t)
	locator := mockSvc.NewMockLocator(t)
	user := orb.Point{10.3, 36.7}
	locator.EXPECT().Locate(mock.Anything).Return(user, nil)
	fx.expectLoad(restaurantsAndCafes(), nil)

	require.NoError(t, fx.session.LocateOnLoad(context.Background(), locator))
	_, err := fx.session.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, service.Camera{Center: user, Zoom: 12}, fx.surface.Camera())
}

func TestSession_LoadQueryFailure(t *testing.T) {
	fx := createTestSession(t)
	fx.repo.EXPECT().ListPublished(mock.Anything).Return(nil, errors.New("unavailable"))

	result, err := fx.session.Load(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrQueryFailed)
	assert.Equal(t, 0, fx.session.Pool().Len())
}

func TestSession_LoadWithoutCategoryDocument(t *testing.T) {
	fx := createTestSession(t)
	fx.repo.EXPECT().ListPublished(mock.Anything).Return(restaurantsAndCafes(), nil)
	fx.repo.EXPECT().ListCategories(mock.Anything).Return(nil, repository.ErrCategoriesNotFound)

	_, err := fx.session.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fx.session.Snapshot().Categories)
}

func TestSession_SelectCategory(t *testing.T) {
	fx := createTestSession(t)
	fx.expectLoad(restaurantsAndCafes(), nil)
	ctx := context.Background()
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)

	result, err := fx.session.SelectCategory(ctx, "مطاعم")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2", "r3"}, result.Visible)

	result, err = fx.session.SelectCategory(ctx, entity.AllCategories)
	require.NoError(t, err)
	assert.Len(t, result.Visible, 5)
	assert.Equal(t, 5, fx.session.Pool().Len())
}

func TestSession_ShowSaved(t *testing.T) {
	ctx := context.Background()

	t.Run("no bookmarks", func(t *testing.T) {
		fx := createTestSession(t)

		_, err := fx.session.ShowSaved(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrNoSavedOffers)
	})

	t.Run("single bookmark focuses the offer", func(t *testing.T) {
		fx := createTestSession(t)
		fx.expectLoad(restaurantsAndCafes(), nil)
		_, err := fx.session.Load(ctx)
		require.NoError(t, err)
		_, err = fx.session.SelectCategory(ctx, "مطاعم")
		require.NoError(t, err)

		result, err := fx.session.ShowSaved(ctx, []string{"c2", "gone"})
		require.NoError(t, err)

		assert.Equal(t, []string{"c2"}, result.Visible)
		assert.Equal(t, service.Camera{Center: orb.Point{10.7603, 34.7398}, Zoom: 14}, fx.surface.Camera())
		snapshot := fx.session.Snapshot()
		assert.True(t, snapshot.SavedOnly)
		assert.Equal(t, entity.AllCategories, snapshot.Category)
	})

	t.Run("several bookmarks fit the camera", func(t *testing.T) {
		fx := createTestSession(t)
		fx.expectLoad(restaurantsAndCafes(), nil)
		_, err := fx.session.Load(ctx)
		require.NoError(t, err)

		result, err := fx.session.ShowSaved(ctx, []string{"r1", "r3"})
		require.NoError(t, err)

		assert.Equal(t, []string{"r1", "r3"}, result.Visible)
		camera := fx.surface.Camera()
		assert.InDelta(t, (10.1815+8.1335)/2, camera.Center.Lon(), 1e-9)
	})
}

func TestSession_RefreshLeavesSavedModeAndFits(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()
	fx.expectLoad(restaurantsAndCafes()[:2], nil)
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)
	_, err = fx.session.ShowSaved(ctx, []string{"r1"})
	require.NoError(t, err)

	fx.repo.EXPECT().ListPublished(mock.Anything).Return(restaurantsAndCafes(), nil).Once()
	result, err := fx.session.Refresh(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"c2", "r2", "r3"}, result.Created)
	assert.Len(t, result.Visible, 5)
	assert.False(t, fx.session.Snapshot().SavedOnly)
	assert.InDelta(t, (10.7603+8.1335)/2, fx.surface.Camera().Center.Lon(), 1e-9)
}

func TestSession_RefreshHidesOffersThatDisappeared(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()
	fx.expectLoad(restaurantsAndCafes(), nil)
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)

	fx.repo.EXPECT().ListPublished(mock.Anything).Return(restaurantsAndCafes()[:1], nil).Once()
	result, err := fx.session.Refresh(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"r1"}, result.Visible)
	assert.Equal(t, 5, fx.session.Pool().Len())
	assert.ElementsMatch(t, []string{"r1"}, visibleIDs(fx.session.Pool()))
}

func TestSession_ClickMarkerSelectsAndChecksBookmark(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()
	fx.expectLoad(restaurantsAndCafes(), nil)
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)

	err = fx.session.ClickMarker(ctx, "r2", func(_ context.Context, offerID string) (bool, error) {
		assert.Equal(t, "r2", offerID)

		return true, nil
	})
	require.NoError(t, err)

	snapshot := fx.session.Snapshot()
	require.NotNil(t, snapshot.Selected.Offer)
	assert.Equal(t, "r2", snapshot.Selected.Offer.ID)
	assert.True(t, snapshot.Selected.SheetOpen)
	assert.True(t, snapshot.Selected.Bookmarked)
	assert.Equal(t, service.Camera{Center: orb.Point{10.6369, 35.8256}, Zoom: 14}, snapshot.Camera)

	fx.session.CloseSheet()
	snapshot = fx.session.Snapshot()
	assert.False(t, snapshot.Selected.SheetOpen)
	assert.Equal(t, "r2", snapshot.Selected.Offer.ID)
}

func TestSession_ClickMarkerDropsStaleBookmarkResult(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()
	fx.expectLoad(restaurantsAndCafes(), nil)
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)

	err = fx.session.ClickMarker(ctx, "r1", func(context.Context, string) (bool, error) {
		// the user taps another marker before the check returns
		fx.session.selectOffer("c1")

		return true, nil
	})
	require.NoError(t, err)

	selected := fx.session.Snapshot().Selected
	assert.Equal(t, "c1", selected.Offer.ID)
	assert.False(t, selected.Bookmarked)
}

// gatedFetcher holds fetches of one URL until release is closed
type gatedFetcher struct {
	*fakeFetcher
	url     string
	entered chan struct{}
	release chan struct{}
}

func (f *gatedFetcher) FetchAsEmbeddable(ctx context.Context, sourceURL string) (string, error) {
	if sourceURL == f.url {
		close(f.entered)
		<-f.release
	}

	return f.fakeFetcher.FetchAsEmbeddable(ctx, sourceURL)
}

func (s *Session) currentSelection() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection
}

func TestSession_ClickMarkerInterleavedWithReconcile(t *testing.T) {
	repo := mockRepo.NewMockOfferRepository(t)
	newcomer := offerAt("n1", "مطاعم", 10.3, 36.7)
	fetcher := &gatedFetcher{
		fakeFetcher: newFakeFetcher(t),
		url:         newcomer.Thumbnail,
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	session := NewSession("session-1", newTestSurface(), testSettings(), SessionDeps{
		Offers:     repo,
		Fetcher:    fetcher,
		Compositor: icon.NewCompositor(),
		Logger:     newTestLogger(),
		Clock:      func() time.Time { return testNow },
	})
	ctx := context.Background()

	repo.EXPECT().ListPublished(mock.Anything).Return(restaurantsAndCafes(), nil).Once()
	repo.EXPECT().ListCategories(mock.Anything).Return(nil, nil).Once()
	_, err := session.Load(ctx)
	require.NoError(t, err)
	session.MoveCamera(tunis, 16)

	// a refresh holds the reconciler while the newcomer's thumbnail is fetched
	repo.EXPECT().ListPublished(mock.Anything).Return(append(restaurantsAndCafes(), newcomer), nil).Once()
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		_, refreshErr := session.Refresh(ctx)
		assert.NoError(t, refreshErr)
	}()
	<-fetcher.entered

	secondDone := make(chan struct{})
	go func() {
		defer wg.Done()
		assert.NoError(t, session.ClickMarker(ctx, "r1", func(context.Context, string) (bool, error) {
			select {
			case <-secondDone:
			case <-time.After(2 * time.Second):
			}

			return true, nil
		}))
	}()
	require.Eventually(t, func() bool { return session.currentSelection() == 1 }, time.Second, time.Millisecond)

	go func() {
		defer wg.Done()
		defer close(secondDone)
		assert.NoError(t, session.ClickMarker(ctx, "c1", func(context.Context, string) (bool, error) {
			return false, nil
		}))
	}()
	require.Eventually(t, func() bool { return session.currentSelection() == 2 }, time.Second, time.Millisecond)

	close(fetcher.release)
	wg.Wait()

	selected := session.Snapshot().Selected
	require.NotNil(t, selected.Offer)
	assert.Equal(t, "c1", selected.Offer.ID)
	assert.False(t, selected.Bookmarked)
}

func TestSession_ClickHiddenMarker(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()
	fx.expectLoad(restaurantsAndCafes(), nil)
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)
	_, err = fx.session.SelectCategory(ctx, "مقاهي")
	require.NoError(t, err)

	err = fx.session.ClickMarker(ctx, "r1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)

	err = fx.session.ClickMarker(ctx, "missing", nil)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestSession_MoveCameraReclusters(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()
	fx.expectLoad(restaurantsAndCafes(), nil)
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, fx.session.MoveCamera(tunis, 7))
	assert.Equal(t, 5, fx.session.MoveCamera(tunis, 16))
}

func TestSession_SnapshotFeatures(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()
	fx.expectLoad(restaurantsAndCafes(), nil)
	_, err := fx.session.Load(ctx)
	require.NoError(t, err)
	fx.session.MoveCamera(tunis, 7)

	snapshot := fx.session.Snapshot()

	kinds := map[string]int{}
	total := 0
	for _, feature := range snapshot.Markers.Features {
		kind := feature.Properties["kind"].(string)
		kinds[kind]++
		if kind == "cluster" {
			total += feature.Properties["count"].(int)
		} else {
			total++
			assert.NotEmpty(t, feature.Properties["offer_id"])
		}
	}
	assert.Equal(t, map[string]int{"cluster": 1, "offer": 3}, kinds)
	assert.Equal(t, 5, total)
}

func TestSession_RecenterFallback(t *testing.T) {
	fx := createTestSession(t)
	locator := mockSvc.NewMockLocator(t)
	locator.EXPECT().Locate(mock.Anything).Return(orb.Point{}, domainerrors.ErrGeolocationDenied)

	err := fx.session.Recenter(context.Background(), locator)

	assert.ErrorIs(t, err, domainerrors.ErrGeolocationDenied)
	assert.Equal(t, service.Camera{Center: tunis, Zoom: 7}, fx.surface.Camera())
}

func TestSession_Teardown(t *testing.T) {
	fx := createTestSession(t)
	fx.expectLoad(restaurantsAndCafes(), nil)
	_, err := fx.session.Load(context.Background())
	require.NoError(t, err)

	fx.session.Teardown()

	assert.Equal(t, 0, fx.surface.MarkerCount())
}
