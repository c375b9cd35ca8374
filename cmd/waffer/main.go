package main

import (
	"context"
	"log/slog"
	"os"

	"waffer/config"
	"waffer/internal/delivery"
	"waffer/internal/delivery/http"
	"waffer/internal/delivery/http/middleware"
	"waffer/internal/delivery/http/router/handler"
	"waffer/internal/domain/service"
	"waffer/internal/infra/auth"
	"waffer/internal/infra/basemap"
	"waffer/internal/infra/firebaseapp"
	"waffer/internal/infra/icon"
	"waffer/internal/infra/imageproxy"
	logs "waffer/internal/infra/log"
	"waffer/internal/infra/mapsurface"
	"waffer/internal/infra/persistence/firestoredb"
	"waffer/internal/infra/pubsub"
	"waffer/internal/infra/qrcode"
	"waffer/internal/infra/tracing"
	"waffer/internal/usecase"
	"waffer/internal/usecase/impl"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebaseapp.NewApp,
		firestoredb.New,
		imageproxy.NewCacheBucket,
		tracing.NewTracerProvider,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestoredb.NewOfferRepository,
			firestoredb.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityProvider,
			pubsub.NewEventPublisher,
			basemap.NewTileService,
			imageproxy.NewProxy,
			imageproxy.NewImageFetcher,
			fx.Annotate(
				icon.NewCompositor,
				fx.As(new(service.IconCompositor)),
			),
			newQRCodeService,
			newSurfaceFactory,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newSurfaceFactory gives every map session its own surface, opened on the default region
func newSurfaceFactory(cfg *config.Config) usecase.SurfaceFactory {
	mapView := cfg.MapView

	return func() service.MapSurface {
		camera := service.Camera{
			Center: orb.Point{mapView.DefaultLongitude, mapView.DefaultLatitude},
			Zoom:   mapView.InitialZoom,
		}

		return mapsurface.NewMemory(camera, mapView.ViewportWidth, mapView.ViewportHeight)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMapService,
			impl.NewOfferService,
			impl.NewBookmarkService,
			impl.NewImageProxyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewOfferHandler,
			handler.NewProxyHandler,
			handler.NewTileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
