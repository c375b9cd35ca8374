// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"waffer/config"
	deliverycontext "waffer/internal/delivery/context"
	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/repository"
	"waffer/internal/domain/service"
	"waffer/internal/mapview"
	"waffer/internal/usecase"
	"waffer/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxCameraZoom    = 22
	minSweepInterval = time.Minute
)

// mapService implements the MapUsecase interface on an in-memory session registry.
type mapService struct {
	settings   mapview.SessionSettings
	deps       mapview.SessionDeps
	newSurface usecase.SurfaceFactory
	bookmarks  usecase.BookmarkUsecase
	ttl        time.Duration
	clock      func() time.Time
	logger     *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*mapview.Session
}

// MapServiceParams holds dependencies for the map service, injected by Fx
type MapServiceParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Offers     repository.OfferRepository
	Fetcher    service.ImageFetcher
	Compositor service.IconCompositor
	Surfaces   usecase.SurfaceFactory
	Bookmarks  usecase.BookmarkUsecase
	Logger     *slog.Logger
}

// NewMapService is the constructor for mapService.
// Idle sessions are swept in the background while the application runs.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	srv := newMapService(params, time.Now)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go srv.sweepLoop(sweepCtx, max(srv.ttl/2, minSweepInterval))

			return nil
		},
		OnStop: func(context.Context) error {
			cancelSweep()
			srv.closeAll()

			return nil
		},
	})

	return srv
}

func newMapService(params MapServiceParams, clock func() time.Time) *mapService {
	return &mapService{
		settings: SessionSettingsFromConfig(params.Config.MapView),
		deps: mapview.SessionDeps{
			Offers:     params.Offers,
			Fetcher:    params.Fetcher,
			Compositor: params.Compositor,
			Logger:     params.Logger,
			Clock:      clock,
		},
		newSurface: params.Surfaces,
		bookmarks:  params.Bookmarks,
		ttl:        params.Config.MapView.SessionTTL,
		clock:      clock,
		logger:     params.Logger,
		sessions:   make(map[string]*mapview.Session),
	}
}

// SessionSettingsFromConfig maps the mapView configuration section to engine settings
func SessionSettingsFromConfig(cfg *config.MapViewConfig) mapview.SessionSettings {
	return mapview.SessionSettings{
		InitialZoom:     cfg.InitialZoom,
		ClusterRadiusPx: cfg.ClusterRadiusPx,
		ClusterMaxZoom:  cfg.ClusterMaxZoom,
		Viewport: mapview.ViewportSettings{
			DefaultCenter: orb.Point{cfg.DefaultLongitude, cfg.DefaultLatitude},
			FallbackZoom:  cfg.FallbackZoom,
			UserZoom:      cfg.UserZoom,
			RecenterZoom:  cfg.RecenterZoom,
			DetailZoom:    cfg.DetailZoom,
		},
		Reconciler: mapview.ReconcilerSettings{
			FetchConcurrency:  cfg.FetchConcurrency,
			IconFailurePolicy: cfg.IconFailurePolicy,
		},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession opens a session, locates the user and performs the initial load.
func (srv *mapService) CreateSession(ctx context.Context, input *usecase.CreateSessionInput, identity *entity.Identity) (*usecase.MapView, error) {
	session := mapview.NewSession(uuid.NewString(), srv.newSurface(), srv.settings, srv.deps)

	if err := session.LocateOnLoad(ctx, input.Locator); err != nil {
		// the camera already fell back to the default region
		srv.log(ctx).Debug("User location unavailable on load", slog.Any("error", err))
	}

	result, err := session.Load(ctx)
	if err != nil {
		session.Teardown()

		return nil, err
	}

	srv.mu.Lock()
	srv.sessions[session.ID()] = session
	srv.mu.Unlock()

	srv.log(ctx).Info("Map session created",
		slog.String("session_id", session.ID()),
		slog.Int("markers", len(result.Created)),
		slog.Int("failed_icons", len(result.Failed)),
	)

	return srv.view(session, identity, nil), nil
}

// GetSession returns the current state of a session.
func (srv *mapService) GetSession(_ context.Context, sessionID string, identity *entity.Identity) (*usecase.MapView, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	return srv.view(session, identity, nil), nil
}

// Refresh reloads the offers of a session and fits the camera to all of them.
func (srv *mapService) Refresh(ctx context.Context, sessionID string) (*usecase.MapView, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := session.Refresh(ctx); err != nil {
		return nil, err
	}

	return srv.view(session, nil, nil), nil
}

// SelectCategory changes the category filter of a session.
func (srv *mapService) SelectCategory(ctx context.Context, sessionID, category string) (*usecase.MapView, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := session.SelectCategory(ctx, category); err != nil {
		return nil, err
	}

	return srv.view(session, nil, nil), nil
}

// ShowSaved restricts a session to the offers bookmarked by the user.
// Having no bookmark leaves the map unchanged and returns a notice.
func (srv *mapService) ShowSaved(ctx context.Context, sessionID string, identity *entity.Identity) (*usecase.MapView, error) {
	if identity == nil {
		return nil, domainerrors.ErrAuthRequired
	}

	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	liked, err := srv.bookmarks.LikedOffers(ctx, identity)
	if err != nil {
		return nil, err
	}

	if _, err := session.ShowSaved(ctx, liked); err != nil {
		if errors.Is(err, domainerrors.ErrNoSavedOffers) {
			return srv.view(session, identity, noticeFor(domainerrors.ErrNoSavedOffers, "")), nil
		}

		return nil, err
	}

	return srv.view(session, identity, nil), nil
}

// Recenter moves the camera to the user. A geolocation failure is reported as a notice.
func (srv *mapService) Recenter(ctx context.Context, sessionID string, locator service.Locator) (*usecase.MapView, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	var notice *usecase.Notice
	if err := session.Recenter(ctx, locator); err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return nil, err
		}
		notice = noticeFor(appErr, "")
	}

	return srv.view(session, nil, notice), nil
}

// MoveCamera records a camera change made by the client.
func (srv *mapService) MoveCamera(_ context.Context, sessionID string, center orb.Point, zoom float64) (*usecase.MapView, error) {
	if zoom < 0 || zoom > maxCameraZoom || center.Lat() < -90 || center.Lat() > 90 || center.Lon() < -180 || center.Lon() > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("camera out of range")
	}

	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.MoveCamera(center, zoom)

	return srv.view(session, nil, nil), nil
}

// ClickMarker selects the offer of a marker and resolves its bookmark state for signed-in users.
func (srv *mapService) ClickMarker(ctx context.Context, sessionID, offerID string, identity *entity.Identity) (*usecase.MapView, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}

	var check mapview.BookmarkCheck
	if identity != nil {
		check = func(ctx context.Context, offerID string) (bool, error) {
			return srv.bookmarks.IsBookmarked(ctx, identity, offerID)
		}
	}

	if err := session.ClickMarker(ctx, offerID, check); err != nil {
		return nil, err
	}

	return srv.view(session, identity, nil), nil
}

// CloseSheet hides the detail sheet of a session.
func (srv *mapService) CloseSheet(_ context.Context, sessionID string) (*usecase.MapView, error) {
	session, err := srv.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.CloseSheet()

	return srv.view(session, nil, nil), nil
}

// SetBookmarked updates the sheet of a session after a bookmark toggle.
func (srv *mapService) SetBookmarked(_ context.Context, sessionID, offerID string, bookmarked bool) error {
	session, err := srv.session(sessionID)
	if err != nil {
		return err
	}
	session.SetBookmarked(offerID, bookmarked)

	return nil
}

// CloseSession removes every marker of a session and forgets it.
func (srv *mapService) CloseSession(ctx context.Context, sessionID string) error {
	srv.mu.Lock()
	session, ok := srv.sessions[sessionID]
	delete(srv.sessions, sessionID)
	srv.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}
	session.Teardown()
	srv.log(ctx).Debug("Map session closed", slog.String("session_id", sessionID))

	return nil
}

// SweepExpired tears down sessions idle for longer than the TTL.
func (srv *mapService) SweepExpired(ctx context.Context) int {
	now := srv.clock()

	srv.mu.Lock()
	expired := make([]*mapview.Session, 0)
	for id, session := range srv.sessions {
		if now.Sub(session.LastUsed()) > srv.ttl {
			expired = append(expired, session)
			delete(srv.sessions, id)
		}
	}
	remaining := len(srv.sessions)
	srv.mu.Unlock()

	for _, session := range expired {
		session.Teardown()
		srv.log(ctx).Debug("Map session expired",
			slog.String("session_id", session.ID()),
			slog.String("idle", util.FormatDuration(now.Sub(session.LastUsed()))),
		)
	}
	if len(expired) > 0 {
		srv.log(ctx).Info("Expired map sessions swept",
			slog.Int("expired", len(expired)),
			slog.Int("remaining", remaining),
		)
	}

	return len(expired)
}

func (srv *mapService) sweepLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.SweepExpired(ctx)
		}
	}
}

func (srv *mapService) closeAll() {
	srv.mu.Lock()
	sessions := srv.sessions
	srv.sessions = make(map[string]*mapview.Session)
	srv.mu.Unlock()

	for _, session := range sessions {
		session.Teardown()
	}
}

func (srv *mapService) session(sessionID string) (*mapview.Session, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	session, ok := srv.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

func (srv *mapService) view(session *mapview.Session, identity *entity.Identity, notice *usecase.Notice) *usecase.MapView {
	return &usecase.MapView{
		Snapshot: session.Snapshot(),
		Welcome:  welcome(identity),
		Notice:   notice,
	}
}

func welcome(identity *entity.Identity) string {
	if identity == nil {
		return ""
	}
	name := identity.Name
	if name == "" {
		name = identity.Email
	}

	return "مرحباً، " + name + " 👋"
}

func noticeFor(err domainerrors.AppError, message string) *usecase.Notice {
	if message == "" {
		message = err.Message()
	}

	return &usecase.Notice{Code: err.ErrorCode(), Message: message}
}
