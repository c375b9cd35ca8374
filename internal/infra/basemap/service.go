// Package basemap serves vector basemap tiles from a PMTiles archive.
package basemap

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"waffer/config"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"
	"waffer/internal/util"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

const (
	defaultCacheSize = 64
	maxTileZoom      = 22
)

// pmtilesService implements service.TileService on a pmtiles.Server
type pmtilesService struct {
	tileset string
	server  *pmtiles.Server
	logger  *slog.Logger
}

// disabledService is used when no basemap is configured
type disabledService struct{}

func (disabledService) GetTile(context.Context, int, int, int) (*service.Tile, error) {
	return nil, domainerrors.ErrBasemapDisabled
}

func (disabledService) Enabled() bool {
	return false
}

// ServiceParams holds dependencies for the basemap service
type ServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTileService creates the basemap tile service
func NewTileService(params ServiceParams) (service.TileService, error) {
	cfg := params.Config.Basemap
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Basemap tiles disabled")

		return disabledService{}, nil
	}

	if cfg.Source == "" {
		return nil, errors.New("basemap source is required when enabled")
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	bucketURL, prefix, tileset := parseSourcePath(cfg.Source)

	// pmtiles requires a *log.Logger
	silentLogger := log.New(io.Discard, "", 0)
	server, err := pmtiles.NewServer(bucketURL, prefix, silentLogger, cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	attrs := []any{
		slog.String("source", cfg.Source),
		slog.String("tileset", tileset),
		slog.Int("cache_size", cacheSize),
	}
	if path, ok := localPath(cfg.Source); ok {
		if checksum, size, err := util.FileChecksum(path); err == nil {
			attrs = append(attrs, slog.String("sha256", checksum), slog.String("size", util.FormatBytes(size)))
		} else {
			logger.Warn("Basemap archive not readable", slog.String("path", path), slog.Any("error", err))
		}
	}
	logger.Info("Basemap tile service initialized", attrs...)

	return &pmtilesService{tileset: tileset, server: server, logger: logger}, nil
}

// GetTile returns the encoded tile z/x/y
func (s *pmtilesService) GetTile(ctx context.Context, z, x, y int) (*service.Tile, error) {
	if z < 0 || z > maxTileZoom || x < 0 || y < 0 {
		return nil, domainerrors.ErrTileNotFound
	}
	tile := maptile.New(uint32(x), uint32(y), maptile.Zoom(z))
	if !tile.Valid() {
		return nil, domainerrors.ErrTileNotFound
	}

	status, headers, data := s.server.Get(ctx, fmt.Sprintf("/%s/%d/%d/%d.mvt", s.tileset, tile.Z, tile.X, tile.Y))
	switch status {
	case http.StatusOK:
		return &service.Tile{Data: data, Headers: headers}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, domainerrors.ErrTileNotFound
	default:
		s.logger.Warn("Basemap tile read failed",
			slog.Int("status", status),
			slog.String("tile", fmt.Sprintf("%d/%d/%d", z, x, y)),
		)

		return nil, errors.Errorf("unexpected status code: %d", status)
	}
}

// Enabled implements service.TileService
func (s *pmtilesService) Enabled() bool {
	return true
}

// parseSourcePath splits a source into the bucket URL, key prefix and tileset name.
// Examples:
//   - "/path/to/tunisia.pmtiles" -> ("file:///path/to", "", "tunisia")
//   - "https://example.com/tiles/tunisia.pmtiles" -> ("https://example.com/tiles", "", "tunisia")
//   - "gs://bucket/maps/tunisia.pmtiles" -> ("gs://bucket", "maps", "tunisia")
func parseSourcePath(source string) (bucketURL, prefix, tileset string) {
	if path, ok := localPath(source); ok {
		return "file://" + filepath.Dir(path), "", strings.TrimSuffix(filepath.Base(path), ".pmtiles")
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		lastSlash := strings.LastIndex(source, "/")

		return source[:lastSlash], "", strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
	}

	// cloud buckets such as gs://bucket/dir/name.pmtiles
	scheme, rest, _ := strings.Cut(source, "://")
	bucket, key, _ := strings.Cut(rest, "/")
	dir, file := "", key
	if lastSlash := strings.LastIndex(key, "/"); lastSlash >= 0 {
		dir, file = key[:lastSlash], key[lastSlash+1:]
	}

	return scheme + "://" + bucket, dir, strings.TrimSuffix(file, ".pmtiles")
}

func localPath(source string) (string, bool) {
	if strings.HasPrefix(source, "file://") {
		return strings.TrimPrefix(source, "file://"), true
	}
	if !strings.Contains(source, "://") {
		return source, true
	}

	return "", false
}
