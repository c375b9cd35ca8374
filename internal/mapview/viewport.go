package mapview

import (
	"context"
	"sync"

	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ViewportSettings holds the fixed camera targets
type ViewportSettings struct {
	DefaultCenter orb.Point
	FallbackZoom  float64 // default region
	UserZoom      float64 // first locate after map load
	RecenterZoom  float64 // explicit recenter
	DetailZoom    float64 // selected offer
}

// ViewportState is the camera plus the last known user location
type ViewportState struct {
	Camera       service.Camera `json:"camera"`
	UserLocation *orb.Point     `json:"user_location,omitempty"`
}

// Viewport drives the camera of a map surface
type Viewport struct {
	mu            sync.Mutex
	surface       service.MapSurface
	settings      ViewportSettings
	userLocation  *orb.Point
	firstLoadDone bool
}

// NewViewport creates a controller for surface
func NewViewport(surface service.MapSurface, settings ViewportSettings) *Viewport {
	return &Viewport{surface: surface, settings: settings}
}

// LocateOnLoad runs the geolocation request issued when the map loads
func (v *Viewport) LocateOnLoad(ctx context.Context, locator service.Locator) error {
	return v.locate(ctx, locator, v.settings.UserZoom, false)
}

// RecenterOnUser pans to the user, locating them only when no position is known yet.
// On failure the camera falls back to the default region and the returned
// error tells denial apart from other causes.
func (v *Viewport) RecenterOnUser(ctx context.Context, locator service.Locator) error {
	return v.locate(ctx, locator, v.settings.RecenterZoom, true)
}

func (v *Viewport) locate(ctx context.Context, locator service.Locator, zoom float64, reuse bool) error {
	v.mu.Lock()
	known := v.userLocation
	v.mu.Unlock()

	if reuse && known != nil {
		v.moveTo(*known, zoom)

		return nil
	}

	if locator == nil {
		v.fallback()

		return domainerrors.ErrGeolocationUnavailable
	}

	position, err := locator.Locate(ctx)
	if err != nil {
		v.fallback()
		if errors.Is(err, domainerrors.ErrGeolocationDenied) {
			return domainerrors.ErrGeolocationDenied
		}

		return domainerrors.ErrGeolocationUnavailable
	}

	v.mu.Lock()
	v.userLocation = &position
	v.mu.Unlock()

	v.moveTo(position, zoom)

	return nil
}

// FitBounds fits the camera to the offers' positions.
// It is a no-op for an empty list or a surface that is not ready.
func (v *Viewport) FitBounds(offers []entity.Offer) bool {
	if len(offers) == 0 || !v.surface.Ready() {
		return false
	}

	bound := offers[0].Position.Bound()
	for idx := 1; idx < len(offers); idx++ {
		bound = bound.Extend(offers[idx].Position)
	}
	v.surface.FitBounds(bound)

	return true
}

// FocusOn centres the offer at detail zoom
func (v *Viewport) FocusOn(offer entity.Offer) {
	v.FocusOnPoint(offer.Position)
}

// FocusOnPoint centres the position at detail zoom
func (v *Viewport) FocusOnPoint(position orb.Point) {
	v.moveTo(position, v.settings.DetailZoom)
}

// OnFirstLoad falls back to the default region after the first successful data
// load when the user has not been located. It acts at most once per viewport
// and reports whether it moved the camera.
func (v *Viewport) OnFirstLoad() bool {
	v.mu.Lock()
	if v.firstLoadDone {
		v.mu.Unlock()

		return false
	}
	v.firstLoadDone = true
	located := v.userLocation != nil
	v.mu.Unlock()

	if located {
		return false
	}
	v.fallback()

	return true
}

// Move sets the camera as reported by the client
func (v *Viewport) Move(center orb.Point, zoom float64) {
	v.moveTo(center, zoom)
}

// State returns the camera and user location
func (v *Viewport) State() ViewportState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := ViewportState{Camera: v.surface.Camera()}
	if v.userLocation != nil {
		location := *v.userLocation
		state.UserLocation = &location
	}

	return state
}

func (v *Viewport) fallback() {
	v.moveTo(v.settings.DefaultCenter, v.settings.FallbackZoom)
}

func (v *Viewport) moveTo(center orb.Point, zoom float64) {
	v.surface.PanTo(center)
	v.surface.SetZoom(zoom)
}
