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

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// FindByID retrieves a single vehicle by its unique ID.
func (repo *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, wrapStorageError(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// FindActiveByOwner retrieves the active vehicles owned by the referenced party.
func (repo *vehicleRepository) FindActiveByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where(ownerColumn(owner.Kind)+" = ? AND is_active = ?", owner.ID, true).
		Order("registration_no ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find vehicles by owner")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// CountActiveByOwner counts the active vehicles owned by the referenced party.
// Soft-deleted rows never enter the count. The result is a point-in-time
// snapshot; it may race with a concurrent insert or soft delete.
func (repo *vehicleRepository) CountActiveByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where(ownerColumn(owner.Kind)+" = ? AND is_active = ?", owner.ID, true).
		Count(&count).Error; err != nil {
		return 0, wrapStorageError(err, "failed to count active vehicles by owner")
	}

	return count, nil
}

// ownerColumn maps a party kind to the vehicle FK column keyed to it.
func ownerColumn(kind entity.PartyKind) string {
	if kind == entity.PartyKindCustomer {
		return "customer_id"
	}

	return "client_id"
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity,
// folding the mutually exclusive FK pair into a tagged OwnerRef.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	var owner entity.OwnerRef
	switch {
	case data.ClientID != nil:
		owner = entity.ClientOwner(*data.ClientID)
	case data.CustomerID != nil:
		owner = entity.CustomerOwner(*data.CustomerID)
	}

	return &entity.Vehicle{
		ID:             data.ID,
		RegistrationNo: data.RegistrationNo,
		Make:           data.Make,
		Model:          data.Model,
		BodyTypeID:     data.BodyTypeID,
		VehicleTypeID:  data.VehicleTypeID,
		Owner:          owner,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
