// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"stickers/internal/domain/entity"
	"stickers/internal/domain/repository"
	"stickers/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// ListActiveBodyTypes retrieves active body types ordered by name.
// Ordering is case-insensitive and done in SQL so pagination-free callers get
// a deterministic sequence.
func (repo *catalogRepository) ListActiveBodyTypes(ctx context.Context) ([]*entity.BodyType, error) {
	var bodyTypeModels []*model.BodyTypeModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("LOWER(name) ASC").
		Find(&bodyTypeModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to list active body types")
	}

	bodyTypes := make([]*entity.BodyType, 0, len(bodyTypeModels))
	for _, bodyTypeM := range bodyTypeModels {
		bodyTypes = append(bodyTypes, toBodyTypeDomain(bodyTypeM))
	}

	return bodyTypes, nil
}

// ListActiveVehicleTypes retrieves active vehicle types ordered by name.
func (repo *catalogRepository) ListActiveVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error) {
	var vehicleTypeModels []*model.VehicleTypeModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("LOWER(name) ASC").
		Find(&vehicleTypeModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to list active vehicle types")
	}

	vehicleTypes := make([]*entity.VehicleType, 0, len(vehicleTypeModels))
	for _, vehicleTypeM := range vehicleTypeModels {
		vehicleTypes = append(vehicleTypes, toVehicleTypeDomain(vehicleTypeM))
	}

	return vehicleTypes, nil
}

// ListActiveStock retrieves active sticker stock batches ordered by validity start.
func (repo *catalogRepository) ListActiveStock(ctx context.Context) ([]*entity.StickerStock, error) {
	var stockModels []*model.StickerStockModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("valid_from ASC").
		Find(&stockModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to list active sticker stock")
	}

	stock := make([]*entity.StickerStock, 0, len(stockModels))
	for _, stockM := range stockModels {
		stock = append(stock, toStickerStockDomain(stockM))
	}

	return stock, nil
}

// --- Mapper Functions ---

// toBodyTypeDomain converts a GORM BodyTypeModel to a domain BodyType entity.
func toBodyTypeDomain(data *model.BodyTypeModel) *entity.BodyType {
	if data == nil {
		return nil
	}

	return &entity.BodyType{
		ID:       data.ID,
		Name:     data.Name,
		IsActive: data.IsActive,
	}
}

// toVehicleTypeDomain converts a GORM VehicleTypeModel to a domain VehicleType entity.
func toVehicleTypeDomain(data *model.VehicleTypeModel) *entity.VehicleType {
	if data == nil {
		return nil
	}

	return &entity.VehicleType{
		ID:       data.ID,
		Name:     data.Name,
		IsActive: data.IsActive,
	}
}

// toStickerStockDomain converts a GORM StickerStockModel to a domain StickerStock entity.
func toStickerStockDomain(data *model.StickerStockModel) *entity.StickerStock {
	if data == nil {
		return nil
	}

	return &entity.StickerStock{
		ID:        data.ID,
		IssuedAt:  data.IssuedAt,
		ValidFrom: data.ValidFrom,
		ValidTo:   data.ValidTo,
		IsActive:  data.IsActive,
	}
}
