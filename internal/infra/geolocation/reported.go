// Package geolocation adapts positions reported by the browser to the Locator interface.
package geolocation

import (
	"context"

	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	"github.com/paulmach/orb"
)

// Browser geolocation failure codes as sent by the client
const (
	FailurePermissionDenied    = "permission_denied"
	FailurePositionUnavailable = "position_unavailable"
	FailureTimeout             = "timeout"
	FailureUnsupported         = "unsupported"
)

// Reported is the outcome of a geolocation request performed by the client
type Reported struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Failure   string   `json:"failure,omitempty"`
}

var _ service.Locator = (*Reported)(nil)

// Locate implements service.Locator
func (r *Reported) Locate(ctx context.Context) (orb.Point, error) {
	if err := ctx.Err(); err != nil {
		return orb.Point{}, domainerrors.ErrGeolocationUnavailable
	}

	switch {
	case r.Failure == FailurePermissionDenied:
		return orb.Point{}, domainerrors.ErrGeolocationDenied
	case r.Failure != "":
		return orb.Point{}, domainerrors.ErrGeolocationUnavailable.WithDetails(r.Failure)
	case r.Latitude == nil || r.Longitude == nil:
		return orb.Point{}, domainerrors.ErrGeolocationUnavailable
	}

	position := orb.Point{*r.Longitude, *r.Latitude}
	if !validPosition(position) {
		return orb.Point{}, domainerrors.ErrGeolocationUnavailable.WithDetails("position out of range")
	}

	return position, nil
}

func validPosition(p orb.Point) bool {
	return p.Lat() >= -90 && p.Lat() <= 90 && p.Lon() >= -180 && p.Lon() <= 180
}
