package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "waffer/internal/delivery/context"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	proxyCacheControl       = "public, max-age=31536000, immutable"
	proxyDefaultContentType = "image/png"
)

// ProxyHandlerParams holds dependencies for ProxyHandler, injected by Fx.
type ProxyHandlerParams struct {
	fx.In

	ImageProxyUC usecase.ImageProxyUsecase
	Logger       *slog.Logger
}

// ProxyHandler serves third-party images from the application origin
type ProxyHandler struct {
	imageProxyUC usecase.ImageProxyUsecase
	logger       *slog.Logger
}

// NewProxyHandler is the constructor for ProxyHandler
func NewProxyHandler(params ProxyHandlerParams) *ProxyHandler {
	return &ProxyHandler{
		imageProxyUC: params.ImageProxyUC,
		logger:       params.Logger,
	}
}

// ProxyImage handles GET /api/proxy-image?url=.
// Errors are answered in plain text, the way image clients expect them.
func (h *ProxyHandler) ProxyImage(c echo.Context) error {
	ctx := c.Request().Context()

	img, err := h.imageProxyUC.Fetch(ctx, c.QueryParam("url"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrMissingImageURL) {
			return c.String(http.StatusBadRequest, domainerrors.ErrMissingImageURL.Message())
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Proxy error", slog.Any("error", err))

		return c.String(http.StatusInternalServerError, domainerrors.ErrUpstreamFetchFailed.Message())
	}

	contentType := img.ContentType
	if contentType == "" {
		contentType = proxyDefaultContentType
	}

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, proxyCacheControl)
	header.Set(echo.HeaderAccessControlAllowOrigin, "*")

	return c.Blob(http.StatusOK, contentType, img.Data)
}
