// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"

	"stickers/internal/domain/entity"
	"stickers/internal/domain/repository"
	"stickers/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
	}
}

// ListBodyTypes retrieves the active body types, name ascending.
// Ordering and the active filter are pushed into the query; this layer only
// forwards the result.
func (s *catalogService) ListBodyTypes(ctx context.Context) ([]*entity.BodyType, error) {
	bodyTypes, err := s.catalogRepo.ListActiveBodyTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active body types")
	}

	return bodyTypes, nil
}

// ListVehicleTypes retrieves the active vehicle types, name ascending.
func (s *catalogService) ListVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error) {
	vehicleTypes, err := s.catalogRepo.ListActiveVehicleTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vehicle types")
	}

	return vehicleTypes, nil
}

// ListActiveStock retrieves the active sticker stock batches.
func (s *catalogService) ListActiveStock(ctx context.Context) ([]*entity.StickerStock, error) {
	stock, err := s.catalogRepo.ListActiveStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active sticker stock")
	}

	return stock, nil
}
