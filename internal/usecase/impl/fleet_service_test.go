package impl

import (
	"context"
	"testing"

	"stickers/internal/domain/entity"
	domainerrors "stickers/internal/domain/errors"
	"stickers/internal/domain/repository"
	mockRepo "stickers/internal/mocks/repository"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fleetServiceFixtures holds all test dependencies for fleet service tests.
type fleetServiceFixtures struct {
	service     usecase.FleetUsecase
	partyRepo   *mockRepo.MockPartyRepository
	vehicleRepo *mockRepo.MockVehicleRepository
}

func createTestFleetService(t *testing.T) fleetServiceFixtures {
	partyRepo := mockRepo.NewMockPartyRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)

	service := NewFleetService(FleetServiceParams{
		PartyRepo:   partyRepo,
		VehicleRepo: vehicleRepo,
	})

	return fleetServiceFixtures{
		service:     service,
		partyRepo:   partyRepo,
		vehicleRepo: vehicleRepo,
	}
}

func TestFleetService_CountActiveVehicles_CountsOnlyActive(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	customerID := uuid.New()
	customer := &entity.Party{
		ID:   customerID,
		Kind: entity.PartyKindCustomer,
		Name: "Jane Motorist",
	}

	fx.partyRepo.EXPECT().
		FindCustomerByID(ctx, customerID).
		Return(customer, nil)

	// The owner holds three vehicles, one of which is inactive; only the two
	// active ones are counted.
	fx.vehicleRepo.EXPECT().
		CountActiveByOwner(ctx, entity.OwnerRef{Kind: entity.PartyKindCustomer, ID: customerID}).
		Return(int64(2), nil)

	count, err := fx.service.CountActiveVehicles(ctx, entity.PartyKindCustomer, customerID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFleetService_CountActiveVehicles_ZeroForVehiclelessParty(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	clientID := uuid.New()
	client := &entity.Party{
		ID:   clientID,
		Kind: entity.PartyKindClient,
		Name: "Acme Insurance Ltd",
	}

	fx.partyRepo.EXPECT().
		FindClientByID(ctx, clientID).
		Return(client, nil)

	fx.vehicleRepo.EXPECT().
		CountActiveByOwner(ctx, entity.OwnerRef{Kind: entity.PartyKindClient, ID: clientID}).
		Return(int64(0), nil)

	count, err := fx.service.CountActiveVehicles(ctx, entity.PartyKindClient, clientID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFleetService_CountActiveVehicles_ClientNotFound(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	clientID := uuid.New()

	fx.partyRepo.EXPECT().
		FindClientByID(ctx, clientID).
		Return(nil, repository.ErrClientNotFound)

	// No count expectation: a missing party must short-circuit before the
	// vehicle query runs.
	count, err := fx.service.CountActiveVehicles(ctx, entity.PartyKindClient, clientID)

	assert.Equal(t, int64(0), count)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrClientNotFound, err)
}

func TestFleetService_CountActiveVehicles_CustomerNotFound(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.partyRepo.EXPECT().
		FindCustomerByID(ctx, customerID).
		Return(nil, repository.ErrCustomerNotFound)

	count, err := fx.service.CountActiveVehicles(ctx, entity.PartyKindCustomer, customerID)

	assert.Equal(t, int64(0), count)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrCustomerNotFound, err)
}

func TestFleetService_CountActiveVehicles_InvalidKind(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()

	count, err := fx.service.CountActiveVehicles(ctx, entity.PartyKind("fleet"), uuid.New())

	assert.Equal(t, int64(0), count)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PARTY_KIND", appErr.ErrorCode())
}

func TestFleetService_CountActiveVehicles_CountError(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	clientID := uuid.New()
	client := &entity.Party{ID: clientID, Kind: entity.PartyKindClient}

	fx.partyRepo.EXPECT().
		FindClientByID(ctx, clientID).
		Return(client, nil)

	fx.vehicleRepo.EXPECT().
		CountActiveByOwner(ctx, entity.OwnerRef{Kind: entity.PartyKindClient, ID: clientID}).
		Return(int64(0), errors.New("database error"))

	count, err := fx.service.CountActiveVehicles(ctx, entity.PartyKindClient, clientID)

	assert.Equal(t, int64(0), count)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count active vehicles by owner")
}

func TestFleetService_ListVehiclesByOwner_Success(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	customerID := uuid.New()
	customer := &entity.Party{ID: customerID, Kind: entity.PartyKindCustomer}
	owner := entity.OwnerRef{Kind: entity.PartyKindCustomer, ID: customerID}

	vehicles := []*entity.Vehicle{
		{ID: uuid.New(), RegistrationNo: "KCA 123A", Owner: owner, IsActive: true},
		{ID: uuid.New(), RegistrationNo: "KCB 456B", Owner: owner, IsActive: true},
	}

	fx.partyRepo.EXPECT().
		FindCustomerByID(ctx, customerID).
		Return(customer, nil)

	fx.vehicleRepo.EXPECT().
		FindActiveByOwner(ctx, owner).
		Return(vehicles, nil)

	result, err := fx.service.ListVehiclesByOwner(ctx, entity.PartyKindCustomer, customerID)

	require.NoError(t, err)
	assert.Equal(t, vehicles, result)
}

func TestFleetService_ListVehiclesByOwner_PartyNotFound(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	clientID := uuid.New()

	fx.partyRepo.EXPECT().
		FindClientByID(ctx, clientID).
		Return(nil, repository.ErrClientNotFound)

	result, err := fx.service.ListVehiclesByOwner(ctx, entity.PartyKindClient, clientID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrClientNotFound, err)
}

func TestFleetService_GetVehicle_Success(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	vehicleID := uuid.New()
	vehicle := &entity.Vehicle{
		ID:             vehicleID,
		RegistrationNo: "KCA 123A",
		IsActive:       true,
	}

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, vehicleID).
		Return(vehicle, nil)

	result, err := fx.service.GetVehicle(ctx, vehicleID)

	require.NoError(t, err)
	assert.Equal(t, vehicle, result)
}

func TestFleetService_GetVehicle_NotFound(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, vehicleID).
		Return(nil, repository.ErrVehicleNotFound)

	result, err := fx.service.GetVehicle(ctx, vehicleID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrVehicleNotFound, err)
}
