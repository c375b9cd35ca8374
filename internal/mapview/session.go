package mapview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// SessionSettings configures the engine of one map session
type SessionSettings struct {
	InitialZoom     float64
	ClusterRadiusPx float64
	ClusterMaxZoom  float64
	Viewport        ViewportSettings
	Reconciler      ReconcilerSettings
}

// SessionDeps are the collaborators shared by every session
type SessionDeps struct {
	Offers     repository.OfferRepository
	Fetcher    service.ImageFetcher
	Compositor service.IconCompositor
	Logger     *slog.Logger
	Clock      func() time.Time
}

// BookmarkCheck reports whether the current user bookmarked an offer
type BookmarkCheck func(ctx context.Context, offerID string) (bool, error)

// SelectedOfferContext is the offer shown in the detail sheet
type SelectedOfferContext struct {
	Offer      *entity.Offer `json:"offer,omitempty"`
	SheetOpen  bool          `json:"sheet_open"`
	Bookmarked bool          `json:"bookmarked"`
}

// Snapshot is the renderable state of a session
type Snapshot struct {
	ID           string                     `json:"id"`
	Camera       service.Camera             `json:"camera"`
	UserLocation *orb.Point                 `json:"user_location,omitempty"`
	Category     string                     `json:"category"`
	SavedOnly    bool                       `json:"saved_only"`
	Categories   []entity.Category          `json:"categories"`
	OfferCount   int                        `json:"offer_count"`
	Selected     SelectedOfferContext       `json:"selected"`
	Markers      *geojson.FeatureCollection `json:"markers"`
}

// Session is the server-side state of one map client
type Session struct {
	id         string
	surface    service.MapSurface
	pool       *MarkerPool
	clusters   *ClusterManager
	viewport   *Viewport
	icons      *IconCache
	reconciler *Reconciler
	offersRepo repository.OfferRepository
	clock      func() time.Time
	logger     *slog.Logger

	mu         sync.Mutex
	offers     []entity.Offer
	categories []entity.Category
	filter     Filter
	selected   SelectedOfferContext
	selection  uint64
	lastUsed   time.Time
}

// NewSession assembles the engine of a session drawing on surface
func NewSession(id string, surface service.MapSurface, settings SessionSettings, deps SessionDeps) *Session {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger.With(slog.String("session_id", id))

	session := &Session{
		id:         id,
		surface:    surface,
		pool:       NewMarkerPool(surface),
		clusters:   NewClusterManager(surface, deps.Compositor, settings.ClusterRadiusPx, settings.ClusterMaxZoom),
		viewport:   NewViewport(surface, settings.Viewport),
		icons:      NewIconCache(),
		offersRepo: deps.Offers,
		clock:      clock,
		logger:     logger,
		filter:     CategoryFilter(entity.AllCategories),
		lastUsed:   clock(),
	}
	session.reconciler = NewReconciler(
		session.pool,
		session.clusters,
		session.viewport,
		session.icons,
		deps.Fetcher,
		deps.Compositor,
		settings.Reconciler,
		session.selectOffer,
		logger,
	)

	return session
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Pool exposes the marker pool for inspection
func (s *Session) Pool() *MarkerPool {
	return s.pool
}

// LastUsed returns the time of the last operation on the session
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastUsed
}

// LocateOnLoad centres on the user as the map loads
func (s *Session) LocateOnLoad(ctx context.Context, locator service.Locator) error {
	s.touch()

	return s.viewport.LocateOnLoad(ctx, locator)
}

// Load performs the initial data load and reconciliation
func (s *Session) Load(ctx context.Context) (*ReconcileResult, error) {
	offers, categories, err := s.fetch(ctx, true)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.offers = offers
	s.categories = categories
	s.lastUsed = s.clock()
	s.mu.Unlock()

	result, err := s.reconcile(ctx, FollowUpNone)
	if err != nil {
		return nil, err
	}

	if len(offers) > 0 {
		s.viewport.OnFirstLoad()
	}

	return result, nil
}

// Refresh reloads offers, leaves saved mode and fits the camera to every offer
func (s *Session) Refresh(ctx context.Context) (*ReconcileResult, error) {
	offers, _, err := s.fetch(ctx, false)
	if err != nil {
		return nil, err
	}
	s.icons.ForgetFailures()

	s.mu.Lock()
	s.offers = offers
	s.filter = CategoryFilter(s.filter.Category)
	s.lastUsed = s.clock()
	s.mu.Unlock()

	return s.reconcile(ctx, FollowUpFitAll)
}

// SelectCategory filters markers by category; entity.AllCategories shows every category
func (s *Session) SelectCategory(ctx context.Context, category string) (*ReconcileResult, error) {
	if category == "" {
		category = entity.AllCategories
	}

	s.mu.Lock()
	s.filter.Category = category
	s.lastUsed = s.clock()
	s.mu.Unlock()

	return s.reconcile(ctx, FollowUpNone)
}

// ShowSaved restricts the map to the given bookmarked offers and resets the category
func (s *Session) ShowSaved(ctx context.Context, likedIDs []string) (*ReconcileResult, error) {
	if len(likedIDs) == 0 {
		return nil, domainerrors.ErrNoSavedOffers
	}

	s.mu.Lock()
	s.filter = CategoryFilter(entity.AllCategories).WithSaved(likedIDs)
	s.lastUsed = s.clock()
	s.mu.Unlock()

	return s.reconcile(ctx, FollowUpFitVisible)
}

// ClickMarker dispatches a tap on the offer's marker, then resolves the bookmark
// state of the selection. A result for an offer that is no longer selected is dropped.
func (s *Session) ClickMarker(ctx context.Context, offerID string, check BookmarkCheck) error {
	handle, ok := s.pool.Handle(offerID)
	if !ok || !handle.Visible() {
		return domainerrors.ErrOfferNotFound
	}
	handle.Click()

	s.mu.Lock()
	generation := s.selection
	s.mu.Unlock()

	if check == nil {
		return nil
	}

	bookmarked, err := check(ctx, offerID)
	if err != nil {
		s.logger.Warn("Failed to check bookmark status", slog.String("offer_id", offerID), slog.Any("error", err))

		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// generation is read after Click returns, so a later click may already have
	// bumped it; the offer check catches that case.
	if s.selection == generation && s.selected.Offer != nil && s.selected.Offer.ID == offerID {
		s.selected.Bookmarked = bookmarked
	}

	return nil
}

// SetBookmarked updates the sheet after a bookmark toggle on the selected offer
func (s *Session) SetBookmarked(offerID string, bookmarked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected.Offer != nil && s.selected.Offer.ID == offerID {
		s.selected.Bookmarked = bookmarked
	}
}

// CloseSheet hides the detail sheet and keeps the selection
func (s *Session) CloseSheet() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected.SheetOpen = false
	s.lastUsed = s.clock()
}

// MoveCamera applies a camera change made by the client and reclusters
func (s *Session) MoveCamera(center orb.Point, zoom float64) int {
	s.touch()
	s.viewport.Move(center, zoom)

	return s.reconciler.Recluster()
}

// Recenter pans to the user's location, falling back to the default region
func (s *Session) Recenter(ctx context.Context, locator service.Locator) error {
	s.touch()
	err := s.viewport.RecenterOnUser(ctx, locator)
	s.reconciler.Recluster()

	return err
}

// Snapshot returns the renderable state
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	snapshot := &Snapshot{
		ID:         s.id,
		Category:   s.filter.Category,
		SavedOnly:  s.filter.SavedOnly,
		Categories: append([]entity.Category(nil), s.categories...),
		OfferCount: len(s.offers),
		Selected:   s.selected,
	}
	s.mu.Unlock()

	state := s.viewport.State()
	snapshot.Camera = state.Camera
	snapshot.UserLocation = state.UserLocation
	snapshot.Markers = s.renderedFeatures()

	return snapshot
}

// Teardown removes every marker and badge from the surface
func (s *Session) Teardown() {
	s.clusters.Clear()
	s.pool.Teardown()
}

func (s *Session) renderedFeatures() *geojson.FeatureCollection {
	offerIDs := make(map[service.Marker]string, s.pool.Len())
	for _, entry := range s.pool.All() {
		offerIDs[entry.Handle] = entry.OfferID
	}

	fc := geojson.NewFeatureCollection()
	for _, cluster := range s.clusters.Clusters() {
		if cluster.Badge != nil {
			feature := geojson.NewFeature(cluster.Center)
			feature.Properties["kind"] = "cluster"
			feature.Properties["count"] = cluster.Count()
			feature.Properties["icon"] = cluster.Badge.Icon()
			feature.Properties["z_index"] = BadgeZIndex
			fc.Append(feature)

			continue
		}

		for _, member := range cluster.Members {
			feature := geojson.NewFeature(member.Position())
			feature.ID = offerIDs[member]
			feature.Properties["kind"] = "offer"
			feature.Properties["offer_id"] = offerIDs[member]
			feature.Properties["icon"] = member.Icon()
			fc.Append(feature)
		}
	}

	return fc
}

// selectOffer is bound to every marker's click listener
func (s *Session) selectOffer(offerID string) {
	s.mu.Lock()
	var offer *entity.Offer
	for idx := range s.offers {
		if s.offers[idx].ID == offerID {
			selected := s.offers[idx]
			offer = &selected

			break
		}
	}
	if offer == nil {
		s.mu.Unlock()

		return
	}
	s.selection++
	s.selected = SelectedOfferContext{Offer: offer, SheetOpen: true}
	s.lastUsed = s.clock()
	s.mu.Unlock()

	s.viewport.FocusOn(*offer)
	s.reconciler.Recluster()
}

func (s *Session) reconcile(ctx context.Context, followUp FollowUp) (*ReconcileResult, error) {
	return s.reconciler.ReconcileLatest(ctx, func() Target {
		s.mu.Lock()
		defer s.mu.Unlock()

		return Target{Offers: s.offers, Filter: s.filter}
	}, followUp)
}

func (s *Session) fetch(ctx context.Context, withCategories bool) ([]entity.Offer, []entity.Category, error) {
	published, err := s.offersRepo.ListPublished(ctx)
	if err != nil {
		return nil, nil, queryFailed(err, "list offers")
	}
	offers := entity.ActiveAt(published, s.clock())

	if !withCategories {
		return offers, nil, nil
	}

	categories, err := s.offersRepo.ListCategories(ctx)
	if err != nil && !errors.Is(err, repository.ErrCategoriesNotFound) {
		return nil, nil, queryFailed(err, "list categories")
	}

	return offers, categories, nil
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUsed = s.clock()
}

func queryFailed(err error, op string) error {
	if errors.Is(err, domainerrors.ErrQueryFailed) {
		return err
	}

	return domainerrors.NewDocumentStoreError(err, op)
}
