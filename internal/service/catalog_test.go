package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/mocks"
	"github.com/cafelagoa/stock-service/internal/service"
)

func TestCatalogService_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("computes per-size availability", func(t *testing.T) {
		product := newTestProduct(10, model.Packaging250g, model.Packaging1kg) // 2.5kg
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("List", mock.Anything, true).Return([]model.Product{product}, nil).Once()
		mockReservations.On("ListActive", mock.Anything).Return([]model.Reservation{
			{ProductID: product.ID, PackagingSize: model.Packaging250g, Quantity: 2, Status: model.ReservationActive},
		}, nil).Once()

		svc := service.NewCatalogService(mockProducts, mockReservations, service.NewStockEngine())
		entries, err := svc.Catalog(ctx)
		require.NoError(t, err)

		require.Len(t, entries, 1)
		entry := entries[0]
		assert.InDelta(t, 2.0, entry.AvailableKg, 1e-9)
		require.Len(t, entry.Availability, 2)
		assert.Equal(t, model.Packaging250g, entry.Availability[0].PackagingSize)
		assert.Equal(t, 8, entry.Availability[0].AvailablePackages)
		assert.Equal(t, model.Packaging1kg, entry.Availability[1].PackagingSize)
		assert.Equal(t, 2, entry.Availability[1].AvailablePackages)
	})

	t.Run("serves from cache within TTL", func(t *testing.T) {
		product := newTestProduct(10)
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("List", mock.Anything, true).Return([]model.Product{product}, nil).Once()
		mockReservations.On("ListActive", mock.Anything).Return([]model.Reservation{}, nil).Once()

		svc := service.NewCatalogService(mockProducts, mockReservations, service.NewStockEngine(), service.WithCatalogTTL(time.Minute))

		_, err := svc.Catalog(ctx)
		require.NoError(t, err)
		_, err = svc.Catalog(ctx)
		require.NoError(t, err)

		mockProducts.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("expired cache refetches", func(t *testing.T) {
		product := newTestProduct(10)
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("List", mock.Anything, true).Return([]model.Product{product}, nil).Twice()
		mockReservations.On("ListActive", mock.Anything).Return([]model.Reservation{}, nil).Twice()

		svc := service.NewCatalogService(mockProducts, mockReservations, service.NewStockEngine(), service.WithCatalogTTL(time.Millisecond))

		_, err := svc.Catalog(ctx)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		_, err = svc.Catalog(ctx)
		require.NoError(t, err)

		mockProducts.AssertNumberOfCalls(t, "List", 2)
	})
}

func TestCatalogService_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("bypasses the cache", func(t *testing.T) {
		product := newTestProduct(4, model.Packaging250g)
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("FindByID", mock.Anything, product.ID).Return(&product, nil)
		mockReservations.On("ListActiveByProducts", mock.Anything, []primitive.ObjectID{product.ID}).
			Return([]model.Reservation{}, nil)

		svc := service.NewCatalogService(mockProducts, mockReservations, service.NewStockEngine())
		entry, err := svc.Availability(ctx, product.ID)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, entry.AvailableKg, 1e-9)
	})

	t.Run("unknown product", func(t *testing.T) {
		missingID := primitive.NewObjectID()
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockProducts.On("FindByID", mock.Anything, missingID).Return(nil, nil)

		svc := service.NewCatalogService(mockProducts, new(mocks.MockReservationsRepositoryInterface), service.NewStockEngine())
		_, err := svc.Availability(ctx, missingID)
		assert.ErrorIs(t, err, service.ErrProductNotFound)
	})
}

func TestCatalogService_StockReport(t *testing.T) {
	ctx := context.Background()

	active := newTestProduct(8) // 2kg
	inactive := newTestProduct(4)
	inactive.Active = false

	mockProducts := new(mocks.MockProductsRepositoryInterface)
	mockReservations := new(mocks.MockReservationsRepositoryInterface)
	mockProducts.On("List", mock.Anything, false).Return([]model.Product{active, inactive}, nil)
	mockReservations.On("ListActive", mock.Anything).Return([]model.Reservation{
		{ProductID: active.ID, PackagingSize: model.Packaging500g, Quantity: 2, Status: model.ReservationActive},
		{ProductID: active.ID, PackagingSize: model.Packaging250g, Quantity: 1, Status: model.ReservationActive},
	}, nil)

	svc := service.NewCatalogService(mockProducts, mockReservations, service.NewStockEngine())
	rows, err := svc.StockReport(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, active.ID.Hex(), rows[0].ProductID)
	assert.InDelta(t, 2.0, rows[0].TotalKg, 1e-9)
	assert.InDelta(t, 1.25, rows[0].ReservedKg, 1e-9)
	assert.InDelta(t, 0.75, rows[0].AvailableKg, 1e-9)
	assert.Equal(t, 2, rows[0].ActiveReservations)

	assert.Equal(t, inactive.ID.Hex(), rows[1].ProductID)
	assert.Zero(t, rows[1].ActiveReservations)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active product", func(t *testing.T) {
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockProducts.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
			return p.Name == "Geisha" && p.Active && p.TotalPackagesInStock == 20
		})).Return(nil)

		svc := service.NewCatalogService(mockProducts, new(mocks.MockReservationsRepositoryInterface), service.NewStockEngine())
		product, err := svc.CreateProduct(ctx, dto.CreateProductRequest{
			Name:           "Geisha",
			TotalPackages:  20,
			AvailableSizes: []model.PackagingSize{model.Packaging100g, model.Packaging250g},
		})
		require.NoError(t, err)
		assert.True(t, product.Active)
		mockProducts.AssertExpectations(t)
	})

	t.Run("unknown packaging size rejected", func(t *testing.T) {
		svc := service.NewCatalogService(
			new(mocks.MockProductsRepositoryInterface),
			new(mocks.MockReservationsRepositoryInterface),
			service.NewStockEngine(),
		)
		_, err := svc.CreateProduct(ctx, dto.CreateProductRequest{
			Name:           "Geisha",
			AvailableSizes: []model.PackagingSize{"2kg"},
		})

		var vErr *dto.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "available_sizes", vErr.Field)
	})

	t.Run("create invalidates catalog cache", func(t *testing.T) {
		product := newTestProduct(10)
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("List", mock.Anything, true).Return([]model.Product{product}, nil).Twice()
		mockReservations.On("ListActive", mock.Anything).Return([]model.Reservation{}, nil).Twice()
		mockProducts.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := service.NewCatalogService(mockProducts, mockReservations, service.NewStockEngine(), service.WithCatalogTTL(time.Minute))

		_, err := svc.Catalog(ctx)
		require.NoError(t, err)

		_, err = svc.CreateProduct(ctx, dto.CreateProductRequest{
			Name:           "Geisha",
			AvailableSizes: []model.PackagingSize{model.Packaging250g},
		})
		require.NoError(t, err)

		_, err = svc.Catalog(ctx)
		require.NoError(t, err)

		mockProducts.AssertNumberOfCalls(t, "List", 2)
	})
}

func TestCatalogService_AdjustStock(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("sets base package count", func(t *testing.T) {
		updated := newTestProduct(50)
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockProducts.On("SetStock", mock.Anything, id, 50).Return(&updated, nil)

		svc := service.NewCatalogService(mockProducts, new(mocks.MockReservationsRepositoryInterface), service.NewStockEngine())
		product, err := svc.AdjustStock(ctx, id, 50)
		require.NoError(t, err)
		assert.Equal(t, 50, product.TotalPackagesInStock)
	})

	t.Run("negative count rejected", func(t *testing.T) {
		svc := service.NewCatalogService(
			new(mocks.MockProductsRepositoryInterface),
			new(mocks.MockReservationsRepositoryInterface),
			service.NewStockEngine(),
		)
		_, err := svc.AdjustStock(ctx, id, -1)

		var vErr *dto.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown product", func(t *testing.T) {
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockProducts.On("SetStock", mock.Anything, id, 10).Return(nil, nil)

		svc := service.NewCatalogService(mockProducts, new(mocks.MockReservationsRepositoryInterface), service.NewStockEngine())
		_, err := svc.AdjustStock(ctx, id, 10)
		assert.ErrorIs(t, err, service.ErrProductNotFound)
	})
}
