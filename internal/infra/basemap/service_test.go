package basemap

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"waffer/config"
	domainerrors "waffer/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseSourcePath(t *testing.T) {
	tests := []struct {
		source          string
		expectedBucket  string
		expectedPrefix  string
		expectedTileset string
	}{
		{"file:///data/tiles/tunisia.pmtiles", "file:///data/tiles", "", "tunisia"},
		{"/data/tiles/tunisia.pmtiles", "file:///data/tiles", "", "tunisia"},
		{"/tunisia.pmtiles", "file:///", "", "tunisia"},
		{"https://tiles.example.com:8443/v1/tunisia.pmtiles", "https://tiles.example.com:8443/v1", "", "tunisia"},
		{"gs://waffer-tiles/tunisia.pmtiles", "gs://waffer-tiles", "", "tunisia"},
		{"gs://waffer-tiles/maps/2025/tunisia.pmtiles", "gs://waffer-tiles", "maps/2025", "tunisia"},
		{"s3://bucket/folder/basemap", "s3://bucket", "folder", "basemap"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			bucket, prefix, tileset := parseSourcePath(tt.source)
			assert.Equal(t, tt.expectedBucket, bucket)
			assert.Equal(t, tt.expectedPrefix, prefix)
			assert.Equal(t, tt.expectedTileset, tileset)
		})
	}
}

func TestNewTileService_Disabled(t *testing.T) {
	svc, err := NewTileService(ServiceParams{Config: &config.Config{}, Logger: newTestLogger()})
	require.NoError(t, err)

	assert.False(t, svc.Enabled())
	_, err = svc.GetTile(context.Background(), 0, 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrBasemapDisabled)
}

func TestNewTileService_RequiresSource(t *testing.T) {
	_, err := NewTileService(ServiceParams{
		Config: &config.Config{Basemap: &config.BasemapConfig{Enabled: true}},
		Logger: newTestLogger(),
	})

	assert.Error(t, err)
}

func TestGetTile_RejectsOutOfRangeCoordinates(t *testing.T) {
	svc, err := NewTileService(ServiceParams{
		Config: &config.Config{Basemap: &config.BasemapConfig{
			Enabled: true,
			Source:  filepath.Join(t.TempDir(), "tunisia.pmtiles"),
		}},
		Logger: newTestLogger(),
	})
	require.NoError(t, err)
	require.True(t, svc.Enabled())

	for _, zxy := range [][3]int{{-1, 0, 0}, {23, 0, 0}, {2, 4, 0}, {2, 0, 4}, {3, -1, 2}} {
		_, err := svc.GetTile(context.Background(), zxy[0], zxy[1], zxy[2])
		assert.ErrorIs(t, err, domainerrors.ErrTileNotFound, zxy)
	}
}

func TestGetTile_MissingArchive(t *testing.T) {
	svc, err := NewTileService(ServiceParams{
		Config: &config.Config{Basemap: &config.BasemapConfig{
			Enabled: true,
			Source:  filepath.Join(t.TempDir(), "missing.pmtiles"),
		}},
		Logger: newTestLogger(),
	})
	require.NoError(t, err)

	tile, err := svc.GetTile(context.Background(), 0, 0, 0)
	assert.Nil(t, tile)
	assert.Error(t, err)
}
