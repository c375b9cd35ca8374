package mapsurface

import (
	"testing"

	"waffer/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurface() *Memory {
	return NewMemory(service.Camera{Center: orb.Point{10.1815, 36.8065}, Zoom: 6}, 390, 844)
}

func TestMemory_MarkersStartDetached(t *testing.T) {
	surface := newTestSurface()

	marker := surface.NewMarker(service.MarkerOptions{Position: orb.Point{10, 36}})

	assert.False(t, marker.Visible())
	assert.Empty(t, surface.Rendered())
	assert.Equal(t, 1, surface.MarkerCount())
}

func TestMemory_RenderedExcludesCollapsedAndRemoved(t *testing.T) {
	surface := newTestSurface()

	shown := surface.NewMarker(service.MarkerOptions{Title: "shown"})
	collapsed := surface.NewMarker(service.MarkerOptions{Title: "collapsed"})
	removed := surface.NewMarker(service.MarkerOptions{Title: "removed"})

	for _, marker := range []service.Marker{shown, collapsed, removed} {
		marker.SetVisible(true)
	}
	collapsed.SetCollapsed(true)
	removed.Remove()

	rendered := surface.Rendered()
	require.Len(t, rendered, 1)
	assert.Same(t, shown, rendered[0])
	assert.Equal(t, 2, surface.MarkerCount())
}

func TestMemory_FitBounds(t *testing.T) {
	surface := newTestSurface()

	surface.FitBounds(orb.Point{10.5, 35.5}.Bound())

	camera := surface.Camera()
	assert.Equal(t, orb.Point{10.5, 35.5}, camera.Center)
	assert.Equal(t, float64(MaxFitZoom), camera.Zoom)

	surface.FitBounds(orb.Bound{Min: orb.Point{7.5, 30.2}, Max: orb.Point{11.6, 37.5}})
	camera = surface.Camera()
	assert.InDelta(t, 9.55, camera.Center.Lon(), 1e-9)
	assert.InDelta(t, 33.85, camera.Center.Lat(), 1e-9)
	assert.Equal(t, float64(7), camera.Zoom)
}

func TestMemory_ClickDispatchesListener(t *testing.T) {
	surface := newTestSurface()
	clicks := 0

	marker := surface.NewMarker(service.MarkerOptions{OnClick: func() {
		clicks++
		surface.PanTo(orb.Point{1, 2})
	}})
	marker.Click()

	assert.Equal(t, 1, clicks)
	assert.Equal(t, orb.Point{1, 2}, surface.Camera().Center)
}
