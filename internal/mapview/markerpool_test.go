package mapview

import (
	"sync"
	"sync/atomic"
	"testing"

	"waffer/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerPool_EnsureIsIdempotent(t *testing.T) {
	surface := newTestSurface()
	pool := NewMarkerPool(surface)

	assert.True(t, pool.Ensure("a", tunis, service.Icon{}, nil))
	first, ok := pool.Handle("a")
	require.True(t, ok)

	assert.False(t, pool.Ensure("a", orb.Point{0, 0}, service.Icon{URL: "other"}, nil))
	second, _ := pool.Handle("a")

	assert.Same(t, first, second)
	assert.Equal(t, tunis, second.Position())
	assert.Equal(t, 1, pool.Len())
	assert.Equal(t, 1, surface.MarkerCount())
}

func TestMarkerPool_ConcurrentEnsureCreatesOneHandle(t *testing.T) {
	surface := newTestSurface()
	pool := NewMarkerPool(surface)

	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	start := make(chan struct{})
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if pool.Ensure("x", tunis, service.Icon{}, nil) {
				created.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, 1, pool.Len())
	assert.Equal(t, 1, surface.MarkerCount())
}

func TestMarkerPool_SetVisibleKeepsHandle(t *testing.T) {
	pool := NewMarkerPool(newTestSurface())
	pool.Ensure("a", tunis, service.Icon{}, nil)
	before, _ := pool.Handle("a")

	assert.True(t, pool.SetVisible("a", true))
	assert.True(t, before.Visible())

	pool.SetVisible("a", false)
	assert.False(t, before.Visible())

	pool.SetVisible("a", true)
	pool.SetVisible("a", true)
	after, _ := pool.Handle("a")

	assert.Same(t, before, after)
	assert.True(t, after.Visible())
}

func TestMarkerPool_SetVisibleUnknownOffer(t *testing.T) {
	pool := NewMarkerPool(newTestSurface())

	assert.False(t, pool.SetVisible("missing", true))
	assert.Equal(t, 0, pool.Len())
}

func TestMarkerPool_AllAndTeardown(t *testing.T) {
	surface := newTestSurface()
	pool := NewMarkerPool(surface)
	pool.Ensure("a", tunis, service.Icon{}, nil)
	pool.Ensure("b", tunis, service.Icon{}, nil)

	ids := make([]string, 0)
	for _, entry := range pool.All() {
		ids = append(ids, entry.OfferID)
		assert.NotNil(t, entry.Handle)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
	assert.ElementsMatch(t, []string{"a", "b"}, pool.IDs())

	pool.Teardown()
	assert.Equal(t, 0, pool.Len())
	assert.Equal(t, 0, surface.MarkerCount())
}

func TestMarkerPool_ClickInvokesBoundHandler(t *testing.T) {
	pool := NewMarkerPool(newTestSurface())
	var clicked string
	pool.Ensure("a", tunis, service.Icon{}, func() { clicked = "a" })

	handle, _ := pool.Handle("a")
	handle.Click()

	assert.Equal(t, "a", clicked)
}
