package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Locator resolves the user's current position.
// It fails with ErrGeolocationDenied or ErrGeolocationUnavailable.
type Locator interface {
	Locate(ctx context.Context) (orb.Point, error)
}
