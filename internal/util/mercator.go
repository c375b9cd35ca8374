package util

import (
	"math"

	"github.com/paulmach/orb"
)

// TileSize is the pixel width of one Web Mercator tile
const TileSize = 256.0

// maxSinLat clamps latitudes to the Web Mercator limit (~85.05°)
const maxSinLat = 0.9999

// MercatorPixel projects a point to global pixel coordinates at the given zoom
func MercatorPixel(p orb.Point, zoom float64) (x, y float64) {
	scale := TileSize * math.Exp2(zoom)

	sinLat := math.Sin(p.Lat() * math.Pi / 180)
	sinLat = math.Max(math.Min(sinLat, maxSinLat), -maxSinLat)

	x = (p.Lon() + 180) / 360 * scale
	y = (0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)) * scale

	return x, y
}

// FitZoom returns the largest integer zoom at which the bound fits a
// viewport of widthPx by heightPx, capped at maxZoom.
// A degenerate bound (a single point) yields maxZoom.
func FitZoom(bound orb.Bound, widthPx, heightPx int, maxZoom float64) float64 {
	minX, minY := MercatorPixel(orb.Point{bound.Min.Lon(), bound.Max.Lat()}, 0)
	maxX, maxY := MercatorPixel(orb.Point{bound.Max.Lon(), bound.Min.Lat()}, 0)

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 && spanY <= 0 {
		return maxZoom
	}

	zoom := maxZoom
	if spanX > 0 {
		zoom = math.Min(zoom, math.Log2(float64(widthPx)/spanX))
	}
	if spanY > 0 {
		zoom = math.Min(zoom, math.Log2(float64(heightPx)/spanY))
	}

	return math.Max(0, math.Floor(zoom))
}
