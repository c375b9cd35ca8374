// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"waffer/internal/domain/entity"
	"waffer/internal/domain/service"
	"waffer/internal/mapview"

	"github.com/paulmach/orb"
)

// SurfaceFactory creates the map surface of a new session
type SurfaceFactory func() service.MapSurface

// CreateSessionInput carries what the client knows when its map has loaded
type CreateSessionInput struct {
	// Locator resolves the position the browser reported; nil means none was reported
	Locator service.Locator
}

// Notice is a non-fatal message shown to the user, e.g. after a geolocation failure
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MapView is the response of every map session operation
type MapView struct {
	*mapview.Snapshot
	Welcome string  `json:"welcome,omitempty"`
	Notice  *Notice `json:"notice,omitempty"`
}

// MapUsecase drives the map sessions
type MapUsecase interface {
	CreateSession(ctx context.Context, input *CreateSessionInput, identity *entity.Identity) (*MapView, error)
	GetSession(ctx context.Context, sessionID string, identity *entity.Identity) (*MapView, error)
	Refresh(ctx context.Context, sessionID string) (*MapView, error)
	SelectCategory(ctx context.Context, sessionID, category string) (*MapView, error)
	ShowSaved(ctx context.Context, sessionID string, identity *entity.Identity) (*MapView, error)
	Recenter(ctx context.Context, sessionID string, locator service.Locator) (*MapView, error)
	MoveCamera(ctx context.Context, sessionID string, center orb.Point, zoom float64) (*MapView, error)
	ClickMarker(ctx context.Context, sessionID, offerID string, identity *entity.Identity) (*MapView, error)
	CloseSheet(ctx context.Context, sessionID string) (*MapView, error)
	CloseSession(ctx context.Context, sessionID string) error

	// SetBookmarked updates the session's sheet after a bookmark toggle
	SetBookmarked(ctx context.Context, sessionID, offerID string, bookmarked bool) error

	// SweepExpired tears down sessions idle for longer than the configured TTL
	SweepExpired(ctx context.Context) int
}
