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

// VehicleHandlerParams holds dependencies for VehicleHandler, injected by Fx.
type VehicleHandlerParams struct {
	fx.In

	FleetUC  usecase.FleetUsecase
	PolicyUC usecase.PolicyUsecase
	Logger   *slog.Logger
}

// VehicleHandler holds dependencies for vehicle ledger handlers
type VehicleHandler struct {
	fleetUC  usecase.FleetUsecase
	policyUC usecase.PolicyUsecase
	logger   *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler
func NewVehicleHandler(params VehicleHandlerParams) *VehicleHandler {
	return &VehicleHandler{
		fleetUC:  params.FleetUC,
		policyUC: params.PolicyUC,
		logger:   params.Logger,
	}
}

// CountActiveVehicles handles counting an owner's active vehicles
func (h *VehicleHandler) CountActiveVehicles(c echo.Context) error {
	kind, partyID, ok := parsePartyParams(c)
	if !ok {
		return nil
	}

	count, err := h.fleetUC.CountActiveVehicles(c.Request().Context(), kind, partyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

// ListVehiclesByOwner handles listing an owner's active vehicles
func (h *VehicleHandler) ListVehiclesByOwner(c echo.Context) error {
	kind, partyID, ok := parsePartyParams(c)
	if !ok {
		return nil
	}

	vehicles, err := h.fleetUC.ListVehiclesByOwner(c.Request().Context(), kind, partyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicles)
}

// GetVehicle handles retrieving a vehicle by ID
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid vehicle ID", err.Error())
	}

	vehicle, err := h.fleetUC.GetVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicle)
}

// ListPoliciesByVehicle handles listing the policies covering a vehicle
func (h *VehicleHandler) ListPoliciesByVehicle(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid vehicle ID", err.Error())
	}

	policies, err := h.policyUC.ListPoliciesByVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, policies)
}
