package handler

import (
	"log/slog"
	"net/http"

	"stickers/internal/delivery/http/response"
	"stickers/internal/domain/entity"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartyHandlerParams holds dependencies for PartyHandler, injected by Fx.
type PartyHandlerParams struct {
	fx.In

	RegistryUC usecase.RegistryUsecase
	Logger     *slog.Logger
}

// PartyHandler holds dependencies for party registry handlers
type PartyHandler struct {
	registryUC usecase.RegistryUsecase
	logger     *slog.Logger
}

// NewPartyHandler is the constructor for PartyHandler
func NewPartyHandler(params PartyHandlerParams) *PartyHandler {
	return &PartyHandler{
		registryUC: params.RegistryUC,
		logger:     params.Logger,
	}
}

// GetParty handles retrieving a client or customer by kind and ID
func (h *PartyHandler) GetParty(c echo.Context) error {
	kind, partyID, ok := parsePartyParams(c)
	if !ok {
		return nil
	}

	party, err := h.registryUC.GetParty(c.Request().Context(), kind, partyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, party)
}

// parsePartyParams parses the :kind and :id path parameters. A malformed ID
// writes the 400 itself and reports ok=false; the caller must stop without
// touching the response again. The kind is passed through unvalidated; the
// usecase owns kind validation so the rejection is identical on every
// transport.
func parsePartyParams(c echo.Context) (entity.PartyKind, uuid.UUID, bool) {
	kind := entity.PartyKind(c.Param("kind"))

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = response.BadRequest(c, "VALIDATION_FAILED", "Invalid party ID", err.Error())

		return "", uuid.Nil, false
	}

	return kind, partyID, true
}
