package imageproxy

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"waffer/config"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	"golang.org/x/sync/singleflight"
)

// proxyPath is the route of the image proxy endpoint
const proxyPath = "/api/proxy-image"

// Client fetches thumbnails through a remote image proxy endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxBytes   int64
	group      singleflight.Group
	logger     *slog.Logger
}

// NewClient creates a proxy client for the endpoint rooted at baseURL
func NewClient(baseURL string, httpClient *http.Client, maxBytes int64, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// FetchAsEmbeddable downloads the image behind sourceURL as a base64 data URI
func (c *Client) FetchAsEmbeddable(ctx context.Context, sourceURL string) (string, error) {
	return doShared(ctx, &c.group, sourceURL, c.httpClient, domainerrors.ErrImageFetchFailed,
		func(ctx context.Context) (string, error) {
			return c.fetch(ctx, sourceURL)
		})
}

func (c *Client) fetch(ctx context.Context, sourceURL string) (string, error) {
	endpoint := c.baseURL + proxyPath + "?url=" + url.QueryEscape(sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", domainerrors.ErrImageFetchFailed.WrapMessage(err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.ErrImageFetchFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("Image proxy returned non-success status",
			slog.String("url", sourceURL),
			slog.Int("status", resp.StatusCode),
		)

		return "", domainerrors.ErrImageFetchFailed.WrapMessage(resp.Status)
	}

	data, err := readLimited(resp.Body, resp.ContentLength, c.maxBytes)
	if err != nil {
		return "", domainerrors.ErrImageFetchFailed.WrapMessage(err.Error())
	}

	return DataURI(resp.Header.Get("Content-Type"), data), nil
}

// DataURI encodes image bytes for embedding in SVG markup
func DataURI(contentType string, data []byte) string {
	if contentType == "" {
		contentType = DefaultContentType
	}
	// drop parameters such as charset
	if mediaType, _, found := strings.Cut(contentType, ";"); found {
		contentType = mediaType
	}

	return "data:" + strings.TrimSpace(contentType) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// LocalFetcher serves FetchAsEmbeddable from an in-process image source
type LocalFetcher struct {
	source service.ImageSource
}

// NewLocalFetcher wraps the proxy's image source
func NewLocalFetcher(source service.ImageSource) *LocalFetcher {
	return &LocalFetcher{source: source}
}

// FetchAsEmbeddable implements service.ImageFetcher
func (f *LocalFetcher) FetchAsEmbeddable(ctx context.Context, sourceURL string) (string, error) {
	img, err := f.source.Fetch(ctx, sourceURL)
	if err != nil {
		return "", domainerrors.ErrImageFetchFailed.WrapMessage(err.Error())
	}

	return DataURI(img.ContentType, img.Data), nil
}

// NewImageFetcher selects the remote proxy client when a base URL is configured
func NewImageFetcher(cfg *config.Config, source service.ImageSource, logger *slog.Logger) service.ImageFetcher {
	if cfg.ImageProxy.BaseURL == "" {
		logger.Info("Image proxy base URL not configured, fetching in-process")

		return NewLocalFetcher(source)
	}

	logger.Info("Using remote image proxy", slog.String("base_url", cfg.ImageProxy.BaseURL))

	return NewClient(cfg.ImageProxy.BaseURL, &http.Client{Timeout: cfg.ImageProxy.Timeout}, cfg.ImageProxy.MaxBytes, logger)
}
