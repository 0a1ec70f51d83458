package impl

import (
	"context"
	"testing"

	"stickers/internal/domain/entity"
	mockRepo "stickers/internal/mocks/repository"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
	})

	return catalogServiceFixtures{
		service:     service,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_ListBodyTypes_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	bodyTypes := []*entity.BodyType{
		{ID: uuid.New(), Name: "Hatchback", IsActive: true},
		{ID: uuid.New(), Name: "sedan", IsActive: true},
		{ID: uuid.New(), Name: "SUV", IsActive: true},
	}

	fx.catalogRepo.EXPECT().
		ListActiveBodyTypes(ctx).
		Return(bodyTypes, nil)

	result, err := fx.service.ListBodyTypes(ctx)

	require.NoError(t, err)
	// The repository delivers the rows already ordered; the service must not
	// reshuffle them.
	assert.Equal(t, bodyTypes, result)
}

func TestCatalogService_ListBodyTypes_Empty(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		ListActiveBodyTypes(ctx).
		Return([]*entity.BodyType{}, nil)

	result, err := fx.service.ListBodyTypes(ctx)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCatalogService_ListBodyTypes_RepoError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		ListActiveBodyTypes(ctx).
		Return(nil, errors.New("database error"))

	result, err := fx.service.ListBodyTypes(ctx)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list active body types")
}

func TestCatalogService_ListVehicleTypes_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	vehicleTypes := []*entity.VehicleType{
		{ID: uuid.New(), Name: "Commercial", IsActive: true},
		{ID: uuid.New(), Name: "private", IsActive: true},
	}

	fx.catalogRepo.EXPECT().
		ListActiveVehicleTypes(ctx).
		Return(vehicleTypes, nil)

	result, err := fx.service.ListVehicleTypes(ctx)

	require.NoError(t, err)
	assert.Equal(t, vehicleTypes, result)
}

func TestCatalogService_ListVehicleTypes_RepoError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		ListActiveVehicleTypes(ctx).
		Return(nil, errors.New("database error"))

	result, err := fx.service.ListVehicleTypes(ctx)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list active vehicle types")
}

func TestCatalogService_ListActiveStock_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	stock := []*entity.StickerStock{
		{ID: uuid.New(), IsActive: true},
		{ID: uuid.New(), IsActive: true},
	}

	fx.catalogRepo.EXPECT().
		ListActiveStock(ctx).
		Return(stock, nil)

	result, err := fx.service.ListActiveStock(ctx)

	require.NoError(t, err)
	assert.Equal(t, stock, result)
}

func TestCatalogService_ListActiveStock_RepoError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		ListActiveStock(ctx).
		Return(nil, errors.New("database error"))

	result, err := fx.service.ListActiveStock(ctx)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list active sticker stock")
}
