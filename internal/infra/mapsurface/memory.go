// Package mapsurface provides the server-side map surface that map sessions draw on.
package mapsurface

import (
	"sync"

	"waffer/internal/domain/service"
	"waffer/internal/util"

	"github.com/paulmach/orb"
)

// MaxFitZoom caps the zoom chosen by FitBounds
const MaxFitZoom = 17

// Memory is an in-memory map surface. Its state is what session snapshots report.
type Memory struct {
	mu       sync.Mutex
	camera   service.Camera
	widthPx  int
	heightPx int
	ready    bool
	markers  map[int]*memoryMarker
	nextID   int
}

// NewMemory creates a ready surface with the given camera and viewport size in pixels
func NewMemory(camera service.Camera, widthPx, heightPx int) *Memory {
	return &Memory{
		camera:   camera,
		widthPx:  widthPx,
		heightPx: heightPx,
		ready:    true,
		markers:  make(map[int]*memoryMarker),
	}
}

// SetReady marks the surface as (not) ready for camera fitting
func (m *Memory) SetReady(ready bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ready = ready
}

// Ready implements service.MapSurface
func (m *Memory) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ready
}

// NewMarker implements service.MapSurface; the marker starts detached
func (m *Memory) NewMarker(opts service.MarkerOptions) service.Marker {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	marker := &memoryMarker{surface: m, id: m.nextID, opts: opts}
	m.markers[marker.id] = marker

	return marker
}

// PanTo implements service.MapSurface
func (m *Memory) PanTo(center orb.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.camera.Center = center
}

// SetZoom implements service.MapSurface
func (m *Memory) SetZoom(zoom float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.camera.Zoom = zoom
}

// FitBounds centres the camera on the bound at the largest zoom that contains it
func (m *Memory) FitBounds(bound orb.Bound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.camera.Center = bound.Center()
	m.camera.Zoom = util.FitZoom(bound, m.widthPx, m.heightPx, MaxFitZoom)
}

// Camera implements service.MapSurface
func (m *Memory) Camera() service.Camera {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.camera
}

// MarkerCount returns the number of live (not removed) markers
func (m *Memory) MarkerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.markers)
}

// Rendered returns the markers currently drawn: attached and not collapsed
func (m *Memory) Rendered() []service.Marker {
	m.mu.Lock()
	defer m.mu.Unlock()

	rendered := make([]service.Marker, 0, len(m.markers))
	for id := 1; id <= m.nextID; id++ {
		marker, ok := m.markers[id]
		if ok && marker.visible && !marker.collapsed {
			rendered = append(rendered, marker)
		}
	}

	return rendered
}

type memoryMarker struct {
	surface   *Memory
	id        int
	opts      service.MarkerOptions
	visible   bool
	collapsed bool
}

func (mk *memoryMarker) Position() orb.Point {
	return mk.opts.Position
}

func (mk *memoryMarker) Icon() service.Icon {
	mk.surface.mu.Lock()
	defer mk.surface.mu.Unlock()

	return mk.opts.Icon
}

func (mk *memoryMarker) SetIcon(icon service.Icon) {
	mk.surface.mu.Lock()
	defer mk.surface.mu.Unlock()

	mk.opts.Icon = icon
}

func (mk *memoryMarker) SetVisible(visible bool) {
	mk.surface.mu.Lock()
	defer mk.surface.mu.Unlock()

	mk.visible = visible
}

func (mk *memoryMarker) Visible() bool {
	mk.surface.mu.Lock()
	defer mk.surface.mu.Unlock()

	return mk.visible
}

func (mk *memoryMarker) SetCollapsed(collapsed bool) {
	mk.surface.mu.Lock()
	defer mk.surface.mu.Unlock()

	mk.collapsed = collapsed
}

func (mk *memoryMarker) Collapsed() bool {
	mk.surface.mu.Lock()
	defer mk.surface.mu.Unlock()

	return mk.collapsed
}

// Click runs the listener outside the surface lock so it may drive the camera
func (mk *memoryMarker) Click() {
	if mk.opts.OnClick != nil {
		mk.opts.OnClick()
	}
}

func (mk *memoryMarker) Remove() {
	mk.surface.mu.Lock()
	defer mk.surface.mu.Unlock()

	mk.visible = false
	delete(mk.surface.markers, mk.id)
}
