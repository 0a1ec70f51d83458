package impl

import (
	"context"
	"testing"
	"time"

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

// policyServiceFixtures holds all test dependencies for policy service tests.
type policyServiceFixtures struct {
	service     usecase.PolicyUsecase
	policyRepo  *mockRepo.MockPolicyRepository
	vehicleRepo *mockRepo.MockVehicleRepository
}

func createTestPolicyService(t *testing.T) policyServiceFixtures {
	policyRepo := mockRepo.NewMockPolicyRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)

	service := NewPolicyService(PolicyServiceParams{
		PolicyRepo:  policyRepo,
		VehicleRepo: vehicleRepo,
	})

	return policyServiceFixtures{
		service:     service,
		policyRepo:  policyRepo,
		vehicleRepo: vehicleRepo,
	}
}

func TestPolicyService_GetPolicy_Success(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	policyID := uuid.New()
	policy := &entity.Policy{
		ID:        policyID,
		PolicyNo:  "POL-2026-0001",
		Status:    "active",
		ValidFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	fx.policyRepo.EXPECT().
		FindByID(ctx, policyID).
		Return(policy, nil)

	result, err := fx.service.GetPolicy(ctx, policyID)

	require.NoError(t, err)
	assert.Equal(t, policy, result)
}

func TestPolicyService_GetPolicy_NotFound(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	policyID := uuid.New()

	fx.policyRepo.EXPECT().
		FindByID(ctx, policyID).
		Return(nil, repository.ErrPolicyNotFound)

	result, err := fx.service.GetPolicy(ctx, policyID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrPolicyNotFound, err)
}

func TestPolicyService_GetPolicy_RepoError(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	policyID := uuid.New()

	fx.policyRepo.EXPECT().
		FindByID(ctx, policyID).
		Return(nil, errors.New("database error"))

	result, err := fx.service.GetPolicy(ctx, policyID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find policy by ID")
}

func TestPolicyService_ListPoliciesByVehicle_Success(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	vehicleID := uuid.New()
	vehicle := &entity.Vehicle{ID: vehicleID, RegistrationNo: "KCA 123A"}

	policies := []*entity.Policy{
		{ID: uuid.New(), PolicyNo: "POL-2026-0002", VehicleID: vehicleID},
		{ID: uuid.New(), PolicyNo: "POL-2025-0107", VehicleID: vehicleID},
	}

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, vehicleID).
		Return(vehicle, nil)

	fx.policyRepo.EXPECT().
		FindByVehicle(ctx, vehicleID).
		Return(policies, nil)

	result, err := fx.service.ListPoliciesByVehicle(ctx, vehicleID)

	require.NoError(t, err)
	assert.Equal(t, policies, result)
}

func TestPolicyService_ListPoliciesByVehicle_EmptyForUncoveredVehicle(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	vehicleID := uuid.New()
	vehicle := &entity.Vehicle{ID: vehicleID, RegistrationNo: "KCB 456B"}

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, vehicleID).
		Return(vehicle, nil)

	fx.policyRepo.EXPECT().
		FindByVehicle(ctx, vehicleID).
		Return([]*entity.Policy{}, nil)

	result, err := fx.service.ListPoliciesByVehicle(ctx, vehicleID)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestPolicyService_ListPoliciesByVehicle_VehicleNotFound(t *testing.T) {
	fx := createTestPolicyService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	fx.vehicleRepo.EXPECT().
		FindByID(ctx, vehicleID).
		Return(nil, repository.ErrVehicleNotFound)

	result, err := fx.service.ListPoliciesByVehicle(ctx, vehicleID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrVehicleNotFound, err)
}
