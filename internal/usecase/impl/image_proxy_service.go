package impl

import (
	"context"
	"log/slog"
	"net/url"

	deliverycontext "waffer/internal/delivery/context"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"
	"waffer/internal/usecase"

	"github.com/pkg/errors"
)

// imageProxyService implements the ImageProxyUsecase interface.
type imageProxyService struct {
	source service.ImageSource
	logger *slog.Logger
}

// NewImageProxyService is the constructor for imageProxyService.
func NewImageProxyService(source service.ImageSource, logger *slog.Logger) usecase.ImageProxyUsecase {
	return &imageProxyService{source: source, logger: logger}
}

// Fetch validates the source URL and retrieves the image.
func (srv *imageProxyService) Fetch(ctx context.Context, sourceURL string) (*service.ProxiedImage, error) {
	if sourceURL == "" {
		return nil, domainerrors.ErrMissingImageURL
	}
	parsed, err := url.Parse(sourceURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, domainerrors.ErrMissingImageURL.WithDetails("url must be an absolute http(s) URL")
	}

	img, err := srv.source.Fetch(ctx, sourceURL)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Image proxy fetch failed",
			slog.String("host", parsed.Host),
			slog.Any("error", err),
		)
		if errors.Is(err, domainerrors.ErrUpstreamFetchFailed) {
			return nil, err
		}

		return nil, domainerrors.ErrUpstreamFetchFailed.WrapMessage(err.Error())
	}

	return img, nil
}
