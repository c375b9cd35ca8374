package service

import "context"

// ProxiedImage is an upstream image as served by the image proxy
type ProxiedImage struct {
	Data        []byte
	ContentType string
}

// ImageSource retrieves upstream image bytes on behalf of the image proxy endpoint.
// Failures are reported as ErrUpstreamFetchFailed.
type ImageSource interface {
	Fetch(ctx context.Context, sourceURL string) (*ProxiedImage, error)
}
