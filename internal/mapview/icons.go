package mapview

import (
	"sync"

	"waffer/internal/domain/service"
)

type iconEntry struct {
	thumbnail string
	icon      service.Icon
	ok        bool
}

// IconCache remembers the icon built for each offer, keyed by offer identity
// and valid only while the offer's thumbnail URL is unchanged. Failed fetches
// are remembered too, until ForgetFailures.
type IconCache struct {
	mu      sync.Mutex
	entries map[string]iconEntry
}

// NewIconCache creates an empty cache
func NewIconCache() *IconCache {
	return &IconCache{entries: make(map[string]iconEntry)}
}

// lookup returns the entry for the offer if it was built from thumbnail
func (c *IconCache) lookup(offerID, thumbnail string) (iconEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[offerID]
	if !ok || entry.thumbnail != thumbnail {
		return iconEntry{}, false
	}

	return entry, true
}

// store records the outcome of building the offer's icon
func (c *IconCache) store(offerID string, entry iconEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[offerID] = entry
}

// ForgetFailures drops failed entries so the next reconciliation retries them
func (c *IconCache) ForgetFailures() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for offerID, entry := range c.entries {
		if !entry.ok {
			delete(c.entries, offerID)
		}
	}
}

// Len returns the number of cached entries
func (c *IconCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
