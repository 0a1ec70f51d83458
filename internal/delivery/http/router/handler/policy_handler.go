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

// PolicyHandlerParams holds dependencies for PolicyHandler, injected by Fx.
type PolicyHandlerParams struct {
	fx.In

	PolicyUC  usecase.PolicyUsecase
	StickerUC usecase.StickerUsecase
	Logger    *slog.Logger
}

// PolicyHandler holds dependencies for policy handlers
type PolicyHandler struct {
	policyUC  usecase.PolicyUsecase
	stickerUC usecase.StickerUsecase
	logger    *slog.Logger
}

// NewPolicyHandler is the constructor for PolicyHandler
func NewPolicyHandler(params PolicyHandlerParams) *PolicyHandler {
	return &PolicyHandler{
		policyUC:  params.PolicyUC,
		stickerUC: params.StickerUC,
		logger:    params.Logger,
	}
}

// GetPolicy handles retrieving a policy by ID
func (h *PolicyHandler) GetPolicy(c echo.Context) error {
	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid policy ID", err.Error())
	}

	policy, err := h.policyUC.GetPolicy(c.Request().Context(), policyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, policy)
}

// ListStickersByPolicy handles listing the stickers issued under a policy
func (h *PolicyHandler) ListStickersByPolicy(c echo.Context) error {
	policyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid policy ID", err.Error())
	}

	stickers, err := h.stickerUC.ListStickersByPolicy(c.Request().Context(), policyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stickers)
}
