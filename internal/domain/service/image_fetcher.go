package service

import "context"

// ImageFetcher retrieves a remote image as an embeddable data URI.
// Failures are reported as ErrImageFetchFailed.
type ImageFetcher interface {
	FetchAsEmbeddable(ctx context.Context, sourceURL string) (string, error)
}
