package imageproxy

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_FetchAsEmbeddable(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/proxy-image", r.URL.Path)
		gotURL = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(pngBytes)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", server.Client(), 1<<20, newTestLogger())

	uri, err := client.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/a b.jpg?x=1&y=2")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/a b.jpg?x=1&y=2", gotURL)
	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(pngBytes), uri)
}

func TestClient_DefaultsContentTypeToPNG(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write(pngBytes)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), 1<<20, newTestLogger())

	uri, err := client.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/a.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestClient_NonSuccessStatusIsImageFetchFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Failed to fetch image", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), 1<<20, newTestLogger())

	uri, err := client.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/y.png")
	assert.Empty(t, uri)
	assert.True(t, errors.Is(err, domainerrors.ErrImageFetchFailed))
}

func TestClient_TransportErrorIsImageFetchFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, http.DefaultClient, 1<<20, newTestLogger())

	_, err := client.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/y.png")
	assert.True(t, errors.Is(err, domainerrors.ErrImageFetchFailed))
}

func TestClient_RejectsOversizedBodies(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "declared length",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write([]byte("0123456789"))
			},
		},
		{
			name: "chunked body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write([]byte("0123"))
				w.(http.Flusher).Flush()
				_, _ = w.Write([]byte("456789"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, server.Client(), 4, newTestLogger())

			uri, err := client.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/big.png")
			assert.Empty(t, uri)
			assert.True(t, errors.Is(err, domainerrors.ErrImageFetchFailed))
		})
	}
}

func TestClient_AcceptsBodyAtLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("0123"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), 4, newTestLogger())

	uri, err := client.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/edge.png")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("0123")), uri)
}

func TestDataURI_StripsParameters(t *testing.T) {
	assert.Equal(t, "data:image/svg+xml;base64,YQ==", DataURI("image/svg+xml; charset=utf-8", []byte("a")))
	assert.Equal(t, "data:image/png;base64,YQ==", DataURI("", []byte("a")))
}

func TestProxy_CachesUpstreamImages(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/webp")
		_, _ = w.Write(pngBytes)
	}))
	defer upstream.Close()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	proxy := newProxy(upstream.Client(), bucket, 1<<20, newTestLogger())
	ctx := context.Background()

	first, err := proxy.Fetch(ctx, upstream.URL+"/thumb.webp")
	require.NoError(t, err)
	second, err := proxy.Fetch(ctx, upstream.URL+"/thumb.webp")
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, "image/webp", second.ContentType)
}

func TestProxy_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	proxy := newProxy(upstream.Client(), nil, 1<<20, newTestLogger())

	img, err := proxy.Fetch(context.Background(), upstream.URL+"/missing.png")
	assert.Nil(t, img)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFetchFailed))
}

func TestProxy_RejectsOversizedBodiesWithoutCaching(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer upstream.Close()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	proxy := newProxy(upstream.Client(), bucket, 10, newTestLogger())
	ctx := context.Background()
	sourceURL := upstream.URL + "/huge.png"

	img, err := proxy.Fetch(ctx, sourceURL)
	assert.Nil(t, img)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFetchFailed))

	exists, err := bucket.Exists(ctx, cacheKey(sourceURL))
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = proxy.Fetch(ctx, sourceURL)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFetchFailed))
	assert.Equal(t, int32(2), hits.Load())
}

func TestProxy_SharedFetchOutlivesCancelledCaller(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	var aborted atomic.Bool
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case entered <- struct{}{}:
		default:
		}
		select {
		case <-release:
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pngBytes)
		case <-r.Context().Done():
			aborted.Store(true)
		}
	}))
	defer upstream.Close()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	proxy := newProxy(upstream.Client(), bucket, 1<<20, newTestLogger())
	sourceURL := upstream.URL + "/slow.png"

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := proxy.Fetch(firstCtx, sourceURL)
		firstErr <- err
	}()

	<-entered
	cancelFirst()
	err := <-firstErr
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFetchFailed))

	type result struct {
		img *service.ProxiedImage
		err error
	}
	second := make(chan result, 1)
	go func() {
		img, err := proxy.Fetch(context.Background(), sourceURL)
		second <- result{img: img, err: err}
	}()
	close(release)

	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, pngBytes, got.img.Data)
	assert.False(t, aborted.Load())
}

type stubSource struct {
	img *service.ProxiedImage
	err error
}

func (s stubSource) Fetch(context.Context, string) (*service.ProxiedImage, error) {
	return s.img, s.err
}

func TestLocalFetcher(t *testing.T) {
	fetcher := NewLocalFetcher(stubSource{img: &service.ProxiedImage{Data: []byte("a"), ContentType: "image/gif"}})

	uri, err := fetcher.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/a.gif")
	require.NoError(t, err)
	assert.Equal(t, "data:image/gif;base64,YQ==", uri)

	failing := NewLocalFetcher(stubSource{err: domainerrors.ErrUpstreamFetchFailed})
	_, err = failing.FetchAsEmbeddable(context.Background(), "https://cdn.example.com/a.gif")
	assert.True(t, errors.Is(err, domainerrors.ErrImageFetchFailed))
}
