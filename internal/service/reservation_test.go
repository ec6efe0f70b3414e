package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/mocks"
	"github.com/cafelagoa/stock-service/internal/service"
)

func TestReservationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one reservation per line", func(t *testing.T) {
		product := newTestProduct(10)
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("FindByID", mock.Anything, product.ID).Return(&product, nil)
		mockReservations.On("ListActiveByProducts", mock.Anything, []primitive.ObjectID{product.ID}).
			Return([]model.Reservation{}, nil)
		mockReservations.On("Create", mock.Anything, mock.MatchedBy(func(rs []model.Reservation) bool {
			return len(rs) == 2 &&
				rs[0].Status == model.ReservationActive &&
				rs[0].ClientName == "Padaria Santa Clara" &&
				rs[1].PackagingSize == model.Packaging250g
		})).Return([]model.Reservation{
			{ID: primitive.NewObjectID(), Status: model.ReservationActive},
			{ID: primitive.NewObjectID(), Status: model.ReservationActive},
		}, nil)

		svc := service.NewReservationService(mockProducts, mockReservations, service.NewStockEngine())
		created, err := svc.Create(ctx, dto.CreateReservationRequest{
			ClientName: "Padaria Santa Clara",
			Lines: []model.SelectionLine{
				{ProductID: product.ID, PackagingSize: model.Packaging1kg, Quantity: 2},
				{ProductID: product.ID, PackagingSize: model.Packaging250g, Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.Len(t, created, 2)
		mockReservations.AssertExpectations(t)
	})

	t.Run("rejects overstock against fresh snapshot", func(t *testing.T) {
		product := newTestProduct(4) // 1kg
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("FindByID", mock.Anything, product.ID).Return(&product, nil)
		mockReservations.On("ListActiveByProducts", mock.Anything, mock.Anything).
			Return([]model.Reservation{
				{ProductID: product.ID, PackagingSize: model.Packaging500g, Quantity: 1, Status: model.ReservationActive},
			}, nil)

		svc := service.NewReservationService(mockProducts, mockReservations, service.NewStockEngine())
		_, err := svc.Create(ctx, dto.CreateReservationRequest{
			ClientName: "Padaria Santa Clara",
			Lines: []model.SelectionLine{
				{ProductID: product.ID, PackagingSize: model.Packaging1kg, Quantity: 1},
			},
		})

		var overstock *service.OverstockError
		require.ErrorAs(t, err, &overstock)
		assert.Equal(t, 0, overstock.Available)
		mockReservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown product", func(t *testing.T) {
		missingID := primitive.NewObjectID()
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("FindByID", mock.Anything, missingID).Return(nil, nil)

		svc := service.NewReservationService(mockProducts, mockReservations, service.NewStockEngine())
		_, err := svc.Create(ctx, dto.CreateReservationRequest{
			ClientName: "Padaria Santa Clara",
			Lines: []model.SelectionLine{
				{ProductID: missingID, PackagingSize: model.Packaging250g, Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, service.ErrProductNotFound)
	})

	t.Run("packaging size not sold", func(t *testing.T) {
		product := newTestProduct(10, model.Packaging250g)
		mockProducts := new(mocks.MockProductsRepositoryInterface)
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockProducts.On("FindByID", mock.Anything, product.ID).Return(&product, nil)
		mockReservations.On("ListActiveByProducts", mock.Anything, mock.Anything).
			Return([]model.Reservation{}, nil)

		svc := service.NewReservationService(mockProducts, mockReservations, service.NewStockEngine())
		_, err := svc.Create(ctx, dto.CreateReservationRequest{
			ClientName: "Padaria Santa Clara",
			Lines: []model.SelectionLine{
				{ProductID: product.ID, PackagingSize: model.Packaging1kg, Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, service.ErrPackagingNotSold)
	})

	t.Run("invalid request", func(t *testing.T) {
		svc := service.NewReservationService(
			new(mocks.MockProductsRepositoryInterface),
			new(mocks.MockReservationsRepositoryInterface),
			service.NewStockEngine(),
		)
		_, err := svc.Create(ctx, dto.CreateReservationRequest{ClientName: ""})

		var vErr *dto.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("active to delivered", func(t *testing.T) {
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockReservations.On("FindByID", mock.Anything, id).
			Return(&model.Reservation{ID: id, Status: model.ReservationActive}, nil)
		mockReservations.On("UpdateStatus", mock.Anything, id, model.ReservationDelivered).
			Return(&model.Reservation{ID: id, Status: model.ReservationDelivered}, nil)

		svc := service.NewReservationService(new(mocks.MockProductsRepositoryInterface), mockReservations, service.NewStockEngine())
		updated, err := svc.UpdateStatus(ctx, id, model.ReservationDelivered)
		require.NoError(t, err)
		assert.Equal(t, model.ReservationDelivered, updated.Status)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		for _, status := range []model.ReservationStatus{model.ReservationDelivered, model.ReservationCancelled} {
			mockReservations := new(mocks.MockReservationsRepositoryInterface)
			mockReservations.On("FindByID", mock.Anything, id).
				Return(&model.Reservation{ID: id, Status: status}, nil)

			svc := service.NewReservationService(new(mocks.MockProductsRepositoryInterface), mockReservations, service.NewStockEngine())
			_, err := svc.UpdateStatus(ctx, id, model.ReservationActive)
			assert.ErrorIs(t, err, service.ErrReservationFinal)
			mockReservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mockReservations := new(mocks.MockReservationsRepositoryInterface)
		mockReservations.On("FindByID", mock.Anything, id).Return(nil, nil)

		svc := service.NewReservationService(new(mocks.MockProductsRepositoryInterface), mockReservations, service.NewStockEngine())
		_, err := svc.UpdateStatus(ctx, id, model.ReservationDelivered)
		assert.ErrorIs(t, err, service.ErrReservationNotFound)
	})
}
