package handler

import (
	"net/http"

	deliverycontext "waffer/internal/delivery/context"
	"waffer/internal/delivery/http/response"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/infra/geolocation"
	"waffer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	MapUC usecase.MapUsecase
}

// SessionHandler exposes the map sessions
type SessionHandler struct {
	mapUC usecase.MapUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{mapUC: params.MapUC}
}

// CreateSessionRequest carries the browser geolocation result, if the client asked for one
type CreateSessionRequest struct {
	Geolocation *geolocation.Reported `json:"geolocation"`
}

// SelectCategoryRequest selects a category; an empty name selects every category
type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// RecenterRequest carries a fresh browser geolocation result
type RecenterRequest struct {
	Geolocation geolocation.Reported `json:"geolocation"`
}

// CameraRequest is the camera after a pan or zoom by the user
type CameraRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Zoom      *float64 `json:"zoom" validate:"required,min=0,max=22"`
}

// CreateSession handles POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session input")
	}

	input := &usecase.CreateSessionInput{}
	if req.Geolocation != nil {
		input.Locator = req.Geolocation
	}

	ctx := c.Request().Context()
	view, err := h.mapUC.CreateSession(ctx, input, deliverycontext.GetIdentity(ctx))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetSession handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.mapUC.GetSession(ctx, c.Param("id"), deliverycontext.GetIdentity(ctx))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// Refresh handles POST /api/v1/sessions/:id/refresh
func (h *SessionHandler) Refresh(c echo.Context) error {
	view, err := h.mapUC.Refresh(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// SelectCategory handles PUT /api/v1/sessions/:id/category
func (h *SessionHandler) SelectCategory(c echo.Context) error {
	var req SelectCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category input")
	}

	view, err := h.mapUC.SelectCategory(c.Request().Context(), c.Param("id"), req.Category)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// ShowSaved handles POST /api/v1/sessions/:id/saved
func (h *SessionHandler) ShowSaved(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.mapUC.ShowSaved(ctx, c.Param("id"), deliverycontext.GetIdentity(ctx))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// Recenter handles POST /api/v1/sessions/:id/recenter
func (h *SessionHandler) Recenter(c echo.Context) error {
	var req RecenterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid geolocation input")
	}

	view, err := h.mapUC.Recenter(c.Request().Context(), c.Param("id"), &req.Geolocation)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// MoveCamera handles PUT /api/v1/sessions/:id/camera
func (h *SessionHandler) MoveCamera(c echo.Context) error {
	var req CameraRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid camera input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	view, err := h.mapUC.MoveCamera(c.Request().Context(), c.Param("id"), orb.Point{*req.Longitude, *req.Latitude}, *req.Zoom)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// ClickMarker handles POST /api/v1/sessions/:id/markers/:offerId/click
func (h *SessionHandler) ClickMarker(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.mapUC.ClickMarker(ctx, c.Param("id"), c.Param("offerId"), deliverycontext.GetIdentity(ctx))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// CloseSheet handles DELETE /api/v1/sessions/:id/sheet
func (h *SessionHandler) CloseSheet(c echo.Context) error {
	view, err := h.mapUC.CloseSheet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// CloseSession handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) CloseSession(c echo.Context) error {
	if err := h.mapUC.CloseSession(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
