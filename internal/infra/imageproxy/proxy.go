// Package imageproxy fetches remote offer thumbnails for the map.
//
// Proxy is the server side of the image proxy endpoint: it downloads upstream bytes
// and keeps them in a blob bucket. Client and LocalFetcher turn proxied images into
// data URIs the icon compositor can embed.
package imageproxy

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"

	"waffer/config"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"
	"waffer/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	"golang.org/x/sync/singleflight"
)

// DefaultContentType is used when the upstream does not declare one
const DefaultContentType = "image/png"

const cacheKeyPrefix = "proxy-image/"

// Proxy downloads upstream images and caches them by source URL
type Proxy struct {
	httpClient *http.Client
	bucket     *blob.Bucket
	maxBytes   int64
	group      singleflight.Group
	logger     *slog.Logger
}

// NewProxy creates the upstream image source
func NewProxy(cfg *config.Config, bucket *blob.Bucket, logger *slog.Logger) service.ImageSource {
	return newProxy(&http.Client{Timeout: cfg.ImageProxy.Timeout}, bucket, cfg.ImageProxy.MaxBytes, logger)
}

func newProxy(httpClient *http.Client, bucket *blob.Bucket, maxBytes int64, logger *slog.Logger) *Proxy {
	return &Proxy{
		httpClient: httpClient,
		bucket:     bucket,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// Fetch returns the image at sourceURL, from the cache when possible
func (p *Proxy) Fetch(ctx context.Context, sourceURL string) (*service.ProxiedImage, error) {
	key := cacheKey(sourceURL)

	if cached, ok := p.readCache(ctx, key); ok {
		return cached, nil
	}

	return doShared(ctx, &p.group, key, p.httpClient, domainerrors.ErrUpstreamFetchFailed,
		func(ctx context.Context) (*service.ProxiedImage, error) {
			img, err := p.download(ctx, sourceURL)
			if err != nil {
				return nil, err
			}
			p.logger.Debug("Fetched upstream image",
				slog.String("url", sourceURL),
				slog.String("size", util.FormatBytes(int64(len(img.Data)))),
			)
			p.writeCache(ctx, key, img)

			return img, nil
		})
}

func (p *Proxy) download(ctx context.Context, sourceURL string) (*service.ProxiedImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFetchFailed.WrapMessage(err.Error())
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFetchFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.ErrUpstreamFetchFailed.WrapMessage(resp.Status)
	}

	data, err := readLimited(resp.Body, resp.ContentLength, p.maxBytes)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFetchFailed.WrapMessage(err.Error())
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DefaultContentType
	}

	return &service.ProxiedImage{Data: data, ContentType: contentType}, nil
}

func (p *Proxy) readCache(ctx context.Context, key string) (*service.ProxiedImage, bool) {
	if p.bucket == nil {
		return nil, false
	}

	attrs, err := p.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) != gcerrors.NotFound {
			p.logger.Warn("Image cache lookup failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	data, err := p.bucket.ReadAll(ctx, key)
	if err != nil {
		p.logger.Warn("Image cache read failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &service.ProxiedImage{Data: data, ContentType: attrs.ContentType}, true
}

// writeCache is best effort; a failed write only costs a later refetch
func (p *Proxy) writeCache(ctx context.Context, key string, img *service.ProxiedImage) {
	if p.bucket == nil {
		return
	}

	err := p.bucket.WriteAll(ctx, key, img.Data, &blob.WriterOptions{
		ContentType:  img.ContentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		p.logger.Warn("Image cache write failed", slog.String("key", key), slog.Any("error", errors.WithStack(err)))
	}
}

func cacheKey(sourceURL string) string {
	sum := sha256.Sum256([]byte(sourceURL))

	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
