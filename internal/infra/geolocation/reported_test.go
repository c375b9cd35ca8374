package geolocation

import (
	"context"
	"testing"

	domainerrors "waffer/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestReported_Locate(t *testing.T) {
	position, err := (&Reported{Latitude: ptr(36.8065), Longitude: ptr(10.1815)}).Locate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, orb.Point{10.1815, 36.8065}, position)
}

func TestReported_LocateFailures(t *testing.T) {
	tests := []struct {
		name     string
		reported Reported
		want     error
	}{
		{"denied", Reported{Failure: FailurePermissionDenied}, domainerrors.ErrGeolocationDenied},
		{"timeout", Reported{Failure: FailureTimeout}, domainerrors.ErrGeolocationUnavailable},
		{"unsupported", Reported{Failure: FailureUnsupported}, domainerrors.ErrGeolocationUnavailable},
		{"nothing reported", Reported{}, domainerrors.ErrGeolocationUnavailable},
		{"latitude only", Reported{Latitude: ptr(36.8)}, domainerrors.ErrGeolocationUnavailable},
		{"out of range", Reported{Latitude: ptr(123), Longitude: ptr(10)}, domainerrors.ErrGeolocationUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.reported.Locate(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReported_DeniedIsNotUnavailable(t *testing.T) {
	_, err := (&Reported{Failure: FailurePermissionDenied}).Locate(context.Background())

	assert.NotErrorIs(t, err, domainerrors.ErrGeolocationUnavailable)
}
