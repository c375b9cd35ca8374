package mapview

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"
	"waffer/internal/infra/icon"
	"waffer/internal/infra/mapsurface"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

var (
	tunis   = orb.Point{10.1815, 36.8065}
	testNow = time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSurface() *mapsurface.Memory {
	return mapsurface.NewMemory(service.Camera{Center: tunis, Zoom: 6}, 390, 844)
}

func testSettings() SessionSettings {
	return SessionSettings{
		InitialZoom:     6,
		ClusterRadiusPx: 100,
		ClusterMaxZoom:  15,
		Viewport: ViewportSettings{
			DefaultCenter: tunis,
			FallbackZoom:  7,
			UserZoom:      12,
			RecenterZoom:  13,
			DetailZoom:    14,
		},
		Reconciler: ReconcilerSettings{
			FetchConcurrency:  4,
			IconFailurePolicy: "skip",
		},
	}
}

func offerAt(id, category string, lon, lat float64) entity.Offer {
	return entity.Offer{
		ID:        id,
		ProdName:  "offer " + id,
		ShopName:  "shop " + id,
		Category:  category,
		Position:  orb.Point{lon, lat},
		EndDate:   testNow.Add(24 * time.Hour),
		Thumbnail: "https://cdn.example.com/" + id + ".png",
	}
}

func pngDataURI(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// fakeFetcher serves one image for every URL except those listed in failures
type fakeFetcher struct {
	mu       sync.Mutex
	dataURI  string
	calls    map[string]int
	failures map[string]bool
}

func newFakeFetcher(t *testing.T, failing ...string) *fakeFetcher {
	failures := make(map[string]bool, len(failing))
	for _, url := range failing {
		failures[url] = true
	}

	return &fakeFetcher{dataURI: pngDataURI(t), calls: make(map[string]int), failures: failures}
}

func (f *fakeFetcher) FetchAsEmbeddable(_ context.Context, sourceURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[sourceURL]++
	if f.failures[sourceURL] {
		return "", domainerrors.ErrImageFetchFailed.WithDetails("500 Internal Server Error")
	}

	return f.dataURI, nil
}

func (f *fakeFetcher) Calls(sourceURL string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[sourceURL]
}

func (f *fakeFetcher) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, n := range f.calls {
		total += n
	}

	return total
}

type reconcilerFixture struct {
	surface    *mapsurface.Memory
	pool       *MarkerPool
	clusters   *ClusterManager
	viewport   *Viewport
	icons      *IconCache
	fetcher    *fakeFetcher
	reconciler *Reconciler
	clicked    []string
}

func newReconcilerFixture(t *testing.T, policy string, failing ...string) *reconcilerFixture {
	settings := testSettings()
	settings.Reconciler.IconFailurePolicy = policy

	fx := &reconcilerFixture{surface: newTestSurface(), fetcher: newFakeFetcher(t, failing...)}
	compositor := icon.NewCompositor()
	fx.pool = NewMarkerPool(fx.surface)
	fx.clusters = NewClusterManager(fx.surface, compositor, settings.ClusterRadiusPx, settings.ClusterMaxZoom)
	fx.viewport = NewViewport(fx.surface, settings.Viewport)
	fx.icons = NewIconCache()
	fx.reconciler = NewReconciler(fx.pool, fx.clusters, fx.viewport, fx.icons, fx.fetcher, compositor,
		settings.Reconciler, func(offerID string) { fx.clicked = append(fx.clicked, offerID) }, newTestLogger())

	return fx
}

func visibleIDs(pool *MarkerPool) []string {
	ids := make([]string, 0)
	for _, entry := range pool.All() {
		if entry.Handle.Visible() {
			ids = append(ids, entry.OfferID)
		}
	}

	return ids
}
