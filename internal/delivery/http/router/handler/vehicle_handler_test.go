package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stickers/internal/delivery/http/response"
	"stickers/internal/domain/entity"
	domainerrors "stickers/internal/domain/errors"
	mockUC "stickers/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVehicleOwnerTestContext(t *testing.T, target, kind, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("kind", "id")
	c.SetParamValues(kind, id)

	return c, rec
}

func newTestVehicleHandler(uc *mockUC.MockFleetUsecase) *VehicleHandler {
	return &VehicleHandler{
		fleetUC: uc,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestVehicleHandler_CountActiveVehicles_Success(t *testing.T) {
	fleetUC := mockUC.NewMockFleetUsecase(t)
	h := newTestVehicleHandler(fleetUC)

	customerID := uuid.New()

	fleetUC.EXPECT().
		CountActiveVehicles(mock.Anything, entity.PartyKindCustomer, customerID).
		Return(int64(2), nil)

	c, rec := newVehicleOwnerTestContext(t, "/parties/customer/"+customerID.String()+"/vehicles/count", "customer", customerID.String())

	require.NoError(t, h.CountActiveVehicles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
}

func TestVehicleHandler_CountActiveVehicles_InvalidID(t *testing.T) {
	// No expectations: the malformed ID must short-circuit before the usecase.
	fleetUC := mockUC.NewMockFleetUsecase(t)
	h := newTestVehicleHandler(fleetUC)

	c, rec := newVehicleOwnerTestContext(t, "/parties/customer/not-a-uuid/vehicles/count", "customer", "not-a-uuid")

	require.NoError(t, h.CountActiveVehicles(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	require.NotNil(t, errResp.Error)
	assert.Equal(t, "VALIDATION_FAILED", errResp.Error.Code)
}

func TestVehicleHandler_CountActiveVehicles_PartyNotFound(t *testing.T) {
	fleetUC := mockUC.NewMockFleetUsecase(t)
	h := newTestVehicleHandler(fleetUC)

	customerID := uuid.New()

	fleetUC.EXPECT().
		CountActiveVehicles(mock.Anything, entity.PartyKindCustomer, customerID).
		Return(int64(0), domainerrors.ErrCustomerNotFound)

	c, rec := newVehicleOwnerTestContext(t, "/parties/customer/"+customerID.String()+"/vehicles/count", "customer", customerID.String())

	require.NoError(t, h.CountActiveVehicles(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CUSTOMER_NOT_FOUND")
}

func TestVehicleHandler_ListVehiclesByOwner_Success(t *testing.T) {
	fleetUC := mockUC.NewMockFleetUsecase(t)
	h := newTestVehicleHandler(fleetUC)

	clientID := uuid.New()
	vehicles := []*entity.Vehicle{
		{ID: uuid.New(), RegistrationNo: "ABC-1234", IsActive: true},
		{ID: uuid.New(), RegistrationNo: "XYZ-5678", IsActive: false},
	}

	fleetUC.EXPECT().
		ListVehiclesByOwner(mock.Anything, entity.PartyKindClient, clientID).
		Return(vehicles, nil)

	c, rec := newVehicleOwnerTestContext(t, "/parties/client/"+clientID.String()+"/vehicles", "client", clientID.String())

	require.NoError(t, h.ListVehiclesByOwner(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ABC-1234")
	assert.Contains(t, rec.Body.String(), "XYZ-5678")
}

func TestVehicleHandler_ListVehiclesByOwner_InvalidID(t *testing.T) {
	fleetUC := mockUC.NewMockFleetUsecase(t)
	h := newTestVehicleHandler(fleetUC)

	c, rec := newVehicleOwnerTestContext(t, "/parties/client/not-a-uuid/vehicles", "client", "not-a-uuid")

	require.NoError(t, h.ListVehiclesByOwner(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	require.NotNil(t, errResp.Error)
	assert.Equal(t, "VALIDATION_FAILED", errResp.Error.Code)
}
