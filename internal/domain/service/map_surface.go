package service

import (
	"github.com/paulmach/orb"
)

// Icon describes a marker image as the rendering layer consumes it
type Icon struct {
	URL      string  `json:"url"` // self-contained data URI
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	AnchorX  float64 `json:"anchor_x"`
	AnchorY  float64 `json:"anchor_y"`
	Degraded bool    `json:"degraded,omitempty"` // image layer omitted
}

// MarkerOptions configures a new marker
type MarkerOptions struct {
	Position orb.Point
	Icon     Icon
	ZIndex   int
	Title    string
	OnClick  func()
}

// Camera is the map's current center and zoom
type Camera struct {
	Center orb.Point `json:"center"`
	Zoom   float64   `json:"zoom"`
}

// Marker is a handle to one pin on the map surface.
// A marker is created detached; attachment and clustering are independent flags.
type Marker interface {
	Position() orb.Point
	Icon() Icon

	// SetIcon swaps the artwork of an existing marker
	SetIcon(icon Icon)

	// SetVisible attaches or detaches the marker without destroying it
	SetVisible(visible bool)
	Visible() bool

	// SetCollapsed hides an attached marker behind a cluster badge
	SetCollapsed(collapsed bool)
	Collapsed() bool

	// Click dispatches the click listener as the rendering layer does on a tap
	Click()

	// Remove destroys the marker; it must not be used afterwards
	Remove()
}

// MapSurface is the mapping SDK surface consumed by the marker engine
type MapSurface interface {
	NewMarker(opts MarkerOptions) Marker
	PanTo(center orb.Point)
	SetZoom(zoom float64)
	FitBounds(bound orb.Bound)
	Camera() Camera
	Ready() bool
}
