package imageproxy

import (
	"context"
	"log/slog"

	"waffer/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// cache buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// cache buckets
	_ "gocloud.dev/blob/memblob"  // mem:// cache buckets
)

// BucketParams holds dependencies for the cache bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCacheBucket opens the blob bucket that caches proxied images
func NewCacheBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL := params.Config.ImageProxy.CacheBucket

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open image cache bucket %q", bucketURL)
	}

	params.Logger.Info("Image cache bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}
