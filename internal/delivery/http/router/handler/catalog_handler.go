package handler

import (
	"log/slog"
	"net/http"

	"stickers/internal/delivery/http/response"
	"stickers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for reference catalog handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListBodyTypes handles listing the active body types
func (h *CatalogHandler) ListBodyTypes(c echo.Context) error {
	bodyTypes, err := h.catalogUC.ListBodyTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bodyTypes)
}

// ListVehicleTypes handles listing the active vehicle types
func (h *CatalogHandler) ListVehicleTypes(c echo.Context) error {
	vehicleTypes, err := h.catalogUC.ListVehicleTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicleTypes)
}

// ListActiveStock handles listing the active sticker stock batches
func (h *CatalogHandler) ListActiveStock(c echo.Context) error {
	stock, err := h.catalogUC.ListActiveStock(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stock)
}
