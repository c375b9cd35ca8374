package imageproxy

import (
	"context"
	"io"
	"net/http"
	"time"

	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// sharedFetchTimeout bounds a deduplicated fetch when the http client sets no timeout
const sharedFetchTimeout = 30 * time.Second

// errTooLarge marks a body that ran past the size limit
var errTooLarge = errors.New("image too large")

// readLimited reads the whole body, failing rather than truncating past maxBytes.
// A non-positive maxBytes disables the limit.
func readLimited(body io.Reader, contentLength, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		data, err := io.ReadAll(body)

		return data, errors.WithStack(err)
	}
	if contentLength > maxBytes {
		return nil, errors.Wrapf(errTooLarge, "declared %s, limit %s", util.FormatBytes(contentLength), util.FormatBytes(maxBytes))
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBytes+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if int64(len(data)) > maxBytes {
		return nil, errors.Wrapf(errTooLarge, "limit %s", util.FormatBytes(maxBytes))
	}

	return data, nil
}

// doShared runs fn once per key for all concurrent callers. fn runs under a context
// detached from the caller that happened to start it, so one caller giving up does
// not fail the others; each caller still returns as soon as its own ctx is done.
func doShared[T any](
	ctx context.Context,
	group *singleflight.Group,
	key string,
	httpClient *http.Client,
	failed *domainerrors.BaseError,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	timeout := sharedFetchTimeout
	if httpClient != nil && httpClient.Timeout > 0 {
		timeout = httpClient.Timeout
	}

	ch := group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		return fn(fetchCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, failed.WrapMessage(ctx.Err().Error())
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}

		return res.Val.(T), nil
	}
}
