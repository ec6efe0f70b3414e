// Code generated manually. DO NOT EDIT.

// Package mocks provides testify mocks for repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

// MockProductsRepositoryInterface mocks ProductsRepositoryInterface.
type MockProductsRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductsRepositoryInterface) List(ctx context.Context, activeOnly bool) ([]model.Product, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductsRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductsRepositoryInterface) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductsRepositoryInterface) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductsRepositoryInterface) SetStock(ctx context.Context, id primitive.ObjectID, totalPackages int) (*model.Product, error) {
	args := m.Called(ctx, id, totalPackages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockReservationsRepositoryInterface mocks ReservationsRepositoryInterface.
type MockReservationsRepositoryInterface struct {
	mock.Mock
}

func (m *MockReservationsRepositoryInterface) Create(ctx context.Context, reservations []model.Reservation) ([]model.Reservation, error) {
	args := m.Called(ctx, reservations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationsRepositoryInterface) List(ctx context.Context, status model.ReservationStatus, limit int) ([]model.Reservation, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationsRepositoryInterface) ListActiveByProducts(ctx context.Context, productIDs []primitive.ObjectID) ([]model.Reservation, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationsRepositoryInterface) ListActive(ctx context.Context) ([]model.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationsRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

func (m *MockReservationsRepositoryInterface) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ReservationStatus) (*model.Reservation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

// MockPriceListsRepositoryInterface mocks PriceListsRepositoryInterface.
type MockPriceListsRepositoryInterface struct {
	mock.Mock
}

func (m *MockPriceListsRepositoryInterface) FindByClient(ctx context.Context, clientID string) (*model.PriceList, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceList), args.Error(1)
}

func (m *MockPriceListsRepositoryInterface) Upsert(ctx context.Context, list *model.PriceList) (*model.PriceList, error) {
	args := m.Called(ctx, list)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceList), args.Error(1)
}

// MockEventRequestsRepositoryInterface mocks EventRequestsRepositoryInterface.
type MockEventRequestsRepositoryInterface struct {
	mock.Mock
}

func (m *MockEventRequestsRepositoryInterface) Create(ctx context.Context, req *model.EventRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockEventRequestsRepositoryInterface) List(ctx context.Context, limit int) ([]model.EventRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EventRequest), args.Error(1)
}

// MockUsersRepositoryInterface mocks UsersRepositoryInterface.
type MockUsersRepositoryInterface struct {
	mock.Mock
}

func (m *MockUsersRepositoryInterface) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUsersRepositoryInterface) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokensRepositoryInterface mocks TokensRepositoryInterface.
type MockTokensRepositoryInterface struct {
	mock.Mock
}

func (m *MockTokensRepositoryInterface) Create(ctx context.Context, token *model.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokensRepositoryInterface) FindByToken(ctx context.Context, tokenString string) (*model.Token, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockTokensRepositoryInterface) DeleteByToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockTokensRepositoryInterface) DeleteByUser(ctx context.Context, userID primitive.ObjectID, tokenType string) error {
	args := m.Called(ctx, userID, tokenType)
	return args.Error(0)
}

// MockLogsRepositoryInterface mocks LogsRepositoryInterface.
type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
