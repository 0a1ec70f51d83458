package impl

import (
	"context"

	"stickers/internal/domain/entity"
	domainerrors "stickers/internal/domain/errors"
	"stickers/internal/domain/repository"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type policyService struct {
	policyRepo  repository.PolicyRepository
	vehicleRepo repository.VehicleRepository
}

// PolicyServiceParams holds dependencies for PolicyService, injected by Fx.
type PolicyServiceParams struct {
	fx.In

	PolicyRepo  repository.PolicyRepository
	VehicleRepo repository.VehicleRepository
}

// NewPolicyService creates a new policy service instance
func NewPolicyService(params PolicyServiceParams) usecase.PolicyUsecase {
	return &policyService{
		policyRepo:  params.PolicyRepo,
		vehicleRepo: params.VehicleRepo,
	}
}

// GetPolicy retrieves a single policy by its unique ID.
func (s *policyService) GetPolicy(ctx context.Context, id uuid.UUID) (*entity.Policy, error) {
	policy, err := s.policyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPolicyNotFound) {
			return nil, domainerrors.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy by ID")
	}

	return policy, nil
}

// ListPoliciesByVehicle verifies the vehicle exists, then lists its policies.
// A vehicle with no policies yields an empty slice.
func (s *policyService) ListPoliciesByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Policy, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	policies, err := s.policyRepo.FindByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find policies by vehicle")
	}

	return policies, nil
}
