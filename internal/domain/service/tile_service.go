package service

import "context"

// Tile is one encoded basemap tile
type Tile struct {
	Data    []byte
	Headers map[string]string
}

// TileService serves basemap vector tiles
type TileService interface {
	GetTile(ctx context.Context, z, x, y int) (*Tile, error)
	Enabled() bool
}
