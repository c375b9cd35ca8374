// Package mapview keeps a map surface in sync with a changing set of offers.
//
// A Session owns one MarkerPool, ClusterManager, Viewport and Reconciler. The
// Reconciler is the only writer of marker visibility and cluster state.
package mapview

import (
	"sync"

	"waffer/internal/domain/service"

	"github.com/paulmach/orb"
)

// MarkerEntry pairs an offer identity with its marker handle
type MarkerEntry struct {
	OfferID string
	Handle  service.Marker
}

// MarkerPool maps offer identities to marker handles.
// A handle is created at most once per identity and is never destroyed while
// the pool lives; hiding a marker only detaches it.
type MarkerPool struct {
	mu      sync.RWMutex
	surface service.MapSurface
	entries map[string]service.Marker
}

// NewMarkerPool creates an empty pool drawing on surface
func NewMarkerPool(surface service.MapSurface) *MarkerPool {
	return &MarkerPool{
		surface: surface,
		entries: make(map[string]service.Marker),
	}
}

// Ensure creates the offer's marker unless one already exists.
// It reports whether a marker was created.
func (p *MarkerPool) Ensure(offerID string, position orb.Point, icon service.Icon, onClick func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.entries[offerID]; ok {
		return false
	}

	p.entries[offerID] = p.surface.NewMarker(service.MarkerOptions{
		Position: position,
		Icon:     icon,
		Title:    offerID,
		OnClick:  onClick,
	})

	return true
}

// SetVisible attaches or detaches the offer's marker.
// Unknown identities are ignored and reported as false.
func (p *MarkerPool) SetVisible(offerID string, visible bool) bool {
	p.mu.RLock()
	handle, ok := p.entries[offerID]
	p.mu.RUnlock()

	if !ok {
		return false
	}
	if handle.Visible() != visible {
		handle.SetVisible(visible)
	}

	return true
}

// Handle returns the marker of an offer
func (p *MarkerPool) Handle(offerID string) (service.Marker, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	handle, ok := p.entries[offerID]

	return handle, ok
}

// All enumerates every entry in no particular order
func (p *MarkerPool) All() []MarkerEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries := make([]MarkerEntry, 0, len(p.entries))
	for offerID, handle := range p.entries {
		entries = append(entries, MarkerEntry{OfferID: offerID, Handle: handle})
	}

	return entries
}

// IDs returns the identities that have a marker
func (p *MarkerPool) IDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.entries))
	for offerID := range p.entries {
		ids = append(ids, offerID)
	}

	return ids
}

// Len returns the number of markers ever created by the pool
func (p *MarkerPool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.entries)
}

// Teardown removes every marker from the surface; the pool must not be used afterwards
func (p *MarkerPool) Teardown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for offerID, handle := range p.entries {
		handle.Remove()
		delete(p.entries, offerID)
	}
}
