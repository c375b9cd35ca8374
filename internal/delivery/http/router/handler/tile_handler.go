package handler

import (
	"net/http"
	"strconv"
	"strings"

	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const tileContentType = "application/x-protobuf"

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	Tiles service.TileService
}

// TileHandler serves the basemap vector tiles
type TileHandler struct {
	tiles service.TileService
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{tiles: params.Tiles}
}

// GetTile handles GET /tiles/:z/:x/:y, where y may carry a .mvt or .pbf extension
func (h *TileHandler) GetTile(c echo.Context) error {
	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	y, errY := strconv.Atoi(trimTileExtension(c.Param("y")))
	if errZ != nil || errX != nil || errY != nil {
		return domainerrors.ErrValidationFailed.WithDetails("tile coordinates must be integers")
	}

	tile, err := h.tiles.GetTile(c.Request().Context(), z, x, y)
	if err != nil {
		return err
	}

	header := c.Response().Header()
	contentType := tileContentType
	for key, value := range tile.Headers {
		if strings.EqualFold(key, echo.HeaderContentType) {
			contentType = value

			continue
		}
		header.Set(key, value)
	}

	return c.Blob(http.StatusOK, contentType, tile.Data)
}

func trimTileExtension(y string) string {
	for _, ext := range []string{".mvt", ".pbf"} {
		if trimmed, ok := strings.CutSuffix(y, ext); ok {
			return trimmed
		}
	}

	return y
}
