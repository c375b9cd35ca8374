package usecase

import (
	"context"

	"waffer/internal/domain/service"
)

// ImageProxyUsecase serves third-party images from the application origin
type ImageProxyUsecase interface {
	// Fetch fails with ErrMissingImageURL for an empty or non-http(s) URL and
	// with ErrUpstreamFetchFailed when the image cannot be retrieved
	Fetch(ctx context.Context, sourceURL string) (*service.ProxiedImage, error)
}
