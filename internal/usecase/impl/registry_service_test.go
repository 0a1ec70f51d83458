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

// registryServiceFixtures holds all test dependencies for registry service tests.
type registryServiceFixtures struct {
	service   usecase.RegistryUsecase
	partyRepo *mockRepo.MockPartyRepository
}

func createTestRegistryService(t *testing.T) registryServiceFixtures {
	partyRepo := mockRepo.NewMockPartyRepository(t)

	service := NewRegistryService(RegistryServiceParams{
		PartyRepo: partyRepo,
	})

	return registryServiceFixtures{
		service:   service,
		partyRepo: partyRepo,
	}
}

func TestRegistryService_GetParty_Client(t *testing.T) {
	fx := createTestRegistryService(t)

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

	result, err := fx.service.GetParty(ctx, entity.PartyKindClient, clientID)

	require.NoError(t, err)
	assert.Equal(t, client, result)
	assert.Equal(t, entity.PartyKindClient, result.Kind)
}

func TestRegistryService_GetParty_Customer(t *testing.T) {
	fx := createTestRegistryService(t)

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

	result, err := fx.service.GetParty(ctx, entity.PartyKindCustomer, customerID)

	require.NoError(t, err)
	assert.Equal(t, customer, result)
}

func TestRegistryService_GetParty_ClientNotFound(t *testing.T) {
	fx := createTestRegistryService(t)

	ctx := context.Background()
	clientID := uuid.New()

	fx.partyRepo.EXPECT().
		FindClientByID(ctx, clientID).
		Return(nil, repository.ErrClientNotFound)

	result, err := fx.service.GetParty(ctx, entity.PartyKindClient, clientID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrClientNotFound, err)
	assert.Equal(t, "Client not found", err.Error())
}

func TestRegistryService_GetParty_CustomerNotFound(t *testing.T) {
	fx := createTestRegistryService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.partyRepo.EXPECT().
		FindCustomerByID(ctx, customerID).
		Return(nil, repository.ErrCustomerNotFound)

	result, err := fx.service.GetParty(ctx, entity.PartyKindCustomer, customerID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrCustomerNotFound, err)
	assert.Equal(t, "Customer not found", err.Error())
}

func TestRegistryService_GetParty_InvalidKind(t *testing.T) {
	fx := createTestRegistryService(t)

	ctx := context.Background()

	result, err := fx.service.GetParty(ctx, entity.PartyKind("broker"), uuid.New())

	assert.Nil(t, result)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PARTY_KIND", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "broker")
}

func TestRegistryService_GetParty_RepoError(t *testing.T) {
	fx := createTestRegistryService(t)

	ctx := context.Background()
	clientID := uuid.New()

	fx.partyRepo.EXPECT().
		FindClientByID(ctx, clientID).
		Return(nil, errors.New("database error"))

	result, err := fx.service.GetParty(ctx, entity.PartyKindClient, clientID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find client by ID")
}
