package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "waffer/internal/delivery/context"
	"waffer/internal/delivery/http/response"
	"waffer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC    usecase.OfferUsecase
	BookmarkUC usecase.BookmarkUsecase
	MapUC      usecase.MapUsecase
	Logger     *slog.Logger
}

// OfferHandler holds dependencies for offer and category handlers
type OfferHandler struct {
	offerUC    usecase.OfferUsecase
	bookmarkUC usecase.BookmarkUsecase
	mapUC      usecase.MapUsecase
	logger     *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC:    params.OfferUC,
		bookmarkUC: params.BookmarkUC,
		mapUC:      params.MapUC,
		logger:     params.Logger,
	}
}

// BookmarkRequest optionally names the map session whose sheet shows the offer
type BookmarkRequest struct {
	SessionID string `json:"session_id"`
}

// BookmarkResponse is the bookmark state after a toggle
type BookmarkResponse struct {
	OfferID    string `json:"offer_id"`
	Bookmarked bool   `json:"bookmarked"`
}

// ListCategories handles GET /api/v1/categories
func (h *OfferHandler) ListCategories(c echo.Context) error {
	categories, err := h.offerUC.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetOffer handles GET /api/v1/offers/:id
func (h *OfferHandler) GetOffer(c echo.Context) error {
	details, err := h.offerUC.GetOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, details)
}

// GetOfferQR handles GET /api/v1/offers/:id/qr
func (h *OfferHandler) GetOfferQR(c echo.Context) error {
	png, err := h.offerUC.OfferQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ToggleBookmark handles POST /api/v1/offers/:id/bookmark
func (h *OfferHandler) ToggleBookmark(c echo.Context) error {
	var req BookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	ctx := c.Request().Context()
	offerID := c.Param("id")

	bookmarked, err := h.bookmarkUC.Toggle(ctx, deliverycontext.GetIdentity(ctx), offerID)
	if err != nil {
		return err
	}

	if req.SessionID != "" {
		if err := h.mapUC.SetBookmarked(ctx, req.SessionID, offerID, bookmarked); err != nil {
			// the toggle is stored; a gone session only misses the sheet update
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Bookmark not reflected in session",
				slog.String("session_id", req.SessionID),
				slog.Any("error", err),
			)
		}
	}

	return response.Success(c, http.StatusOK, BookmarkResponse{OfferID: offerID, Bookmarked: bookmarked})
}
