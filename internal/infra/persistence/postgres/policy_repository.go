package postgres

import (
	"context"

	"stickers/internal/domain/entity"
	"stickers/internal/domain/repository"
	"stickers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// policyRepository implements the repository.PolicyRepository interface.
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository is the constructor for policyRepository.
func NewPolicyRepository(db *gorm.DB) repository.PolicyRepository {
	return &policyRepository{
		db: db,
	}
}

// FindByID retrieves a single policy by its unique ID.
func (repo *policyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Policy, error) {
	var policyM model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&policyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolicyNotFound
		}

		return nil, wrapStorageError(err, "failed to find policy by ID")
	}

	return toPolicyDomain(&policyM), nil
}

// FindByVehicle retrieves all policies attached to a vehicle, newest coverage first.
func (repo *policyRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Policy, error) {
	var policyModels []*model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("valid_from DESC").
		Find(&policyModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find policies by vehicle")
	}

	policies := make([]*entity.Policy, 0, len(policyModels))
	for _, policyM := range policyModels {
		policies = append(policies, toPolicyDomain(policyM))
	}

	return policies, nil
}

// --- Mapper Functions ---

// toPolicyDomain converts a GORM PolicyModel to a domain Policy entity.
func toPolicyDomain(data *model.PolicyModel) *entity.Policy {
	if data == nil {
		return nil
	}

	var party entity.OwnerRef
	switch {
	case data.ClientID != nil:
		party = entity.ClientOwner(*data.ClientID)
	case data.CustomerID != nil:
		party = entity.CustomerOwner(*data.CustomerID)
	}

	return &entity.Policy{
		ID:        data.ID,
		PolicyNo:  data.PolicyNo,
		ValidFrom: data.ValidFrom,
		ValidTo:   data.ValidTo,
		Status:    data.Status,
		VehicleID: data.VehicleID,
		Party:     party,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
