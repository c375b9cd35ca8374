// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"waffer/internal/delivery/http/middleware"
	"waffer/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	OfferHandler   *handler.OfferHandler
	ProxyHandler   *handler.ProxyHandler
	TileHandler    *handler.TileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	offerHandler   *handler.OfferHandler
	proxyHandler   *handler.ProxyHandler
	tileHandler    *handler.TileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		offerHandler:   params.OfferHandler,
		proxyHandler:   params.ProxyHandler,
		tileHandler:    params.TileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Same-origin image and basemap endpoints
	e.GET("/api/proxy-image", r.proxyHandler.ProxyImage)
	e.GET("/tiles/:z/:x/:y", r.tileHandler.GetTile)

	// Every v1 route accepts anonymous callers; the identity is attached when a token is sent
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Identify)

	apiV1.GET("/categories", r.offerHandler.ListCategories)

	offersGroup := apiV1.Group("/offers")
	{
		offersGroup.GET("/:id", r.offerHandler.GetOffer)
		offersGroup.GET("/:id/qr", r.offerHandler.GetOfferQR)
		offersGroup.POST("/:id/bookmark", r.offerHandler.ToggleBookmark)
	}

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.CreateSession)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.DELETE("/:id", r.sessionHandler.CloseSession)
		sessionsGroup.POST("/:id/refresh", r.sessionHandler.Refresh)
		sessionsGroup.PUT("/:id/category", r.sessionHandler.SelectCategory)
		sessionsGroup.POST("/:id/saved", r.sessionHandler.ShowSaved)
		sessionsGroup.POST("/:id/recenter", r.sessionHandler.Recenter)
		sessionsGroup.PUT("/:id/camera", r.sessionHandler.MoveCamera)
		sessionsGroup.POST("/:id/markers/:offerId/click", r.sessionHandler.ClickMarker)
		sessionsGroup.DELETE("/:id/sheet", r.sessionHandler.CloseSheet)
	}
}
