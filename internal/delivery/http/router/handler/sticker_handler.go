package handler

import (
	"log/slog"
	"net/http"

	"stickers/internal/delivery/http/response"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StickerHandlerParams holds dependencies for StickerHandler, injected by Fx.
type StickerHandlerParams struct {
	fx.In

	StickerUC usecase.StickerUsecase
	Logger    *slog.Logger
}

// StickerHandler holds dependencies for sticker lifecycle handlers
type StickerHandler struct {
	stickerUC usecase.StickerUsecase
	logger    *slog.Logger
}

// NewStickerHandler is the constructor for StickerHandler
func NewStickerHandler(params StickerHandlerParams) *StickerHandler {
	return &StickerHandler{
		stickerUC: params.StickerUC,
		logger:    params.Logger,
	}
}

// GetSticker handles retrieving a sticker by ID
func (h *StickerHandler) GetSticker(c echo.Context) error {
	stickerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid sticker ID", err.Error())
	}

	sticker, err := h.stickerUC.GetSticker(c.Request().Context(), stickerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sticker)
}

// DeactivateSticker handles soft-deleting a sticker. Repeating the delete is
// a success and returns the record as first deactivated.
func (h *StickerHandler) DeactivateSticker(c echo.Context) error {
	stickerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid sticker ID", err.Error())
	}

	sticker, err := h.stickerUC.DeactivateSticker(c.Request().Context(), stickerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sticker)
}
