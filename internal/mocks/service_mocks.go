// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/service"
)

// MockStockEngine mocks service.StockEngine.
type MockStockEngine struct {
	mock.Mock
}

func (m *MockStockEngine) ReservedKg(productID primitive.ObjectID, reservations []model.Reservation) (float64, error) {
	args := m.Called(productID, reservations)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStockEngine) AvailableKg(product model.Product, reservations []model.Reservation) (float64, error) {
	args := m.Called(product, reservations)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStockEngine) AvailablePackages(product model.Product, size model.PackagingSize, reservations []model.Reservation) (int, error) {
	args := m.Called(product, size, reservations)
	return args.Int(0), args.Error(1)
}

func (m *MockStockEngine) Reconcile(result model.CalculationResult, lines []model.SelectionLine) (service.Reconciliation, error) {
	args := m.Called(result, lines)
	return args.Get(0).(service.Reconciliation), args.Error(1)
}

func (m *MockStockEngine) ValidateSelection(lines []model.SelectionLine, snap service.StockSnapshot) error {
	args := m.Called(lines, snap)
	return args.Error(0)
}

// MockConsumptionCalculator mocks service.ConsumptionCalculator.
type MockConsumptionCalculator struct {
	mock.Mock
}

func (m *MockConsumptionCalculator) Event(req dto.EventCalculationRequest) (model.CalculationResult, error) {
	args := m.Called(req)
	return args.Get(0).(model.CalculationResult), args.Error(1)
}

func (m *MockConsumptionCalculator) InternalUse(req dto.InternalUseCalculationRequest) (model.CalculationResult, error) {
	args := m.Called(req)
	return args.Get(0).(model.CalculationResult), args.Error(1)
}

// MockCatalogService mocks service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Catalog(ctx context.Context) ([]dto.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) Availability(ctx context.Context, productID primitive.ObjectID) (*dto.CatalogEntry, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) StockReport(ctx context.Context) ([]dto.StockReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StockReportRow), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req dto.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) AdjustStock(ctx context.Context, id primitive.ObjectID, totalPackages int) (*model.Product, error) {
	args := m.Called(ctx, id, totalPackages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockReservationService mocks service.ReservationService.
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, req dto.CreateReservationRequest) ([]model.Reservation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context, status model.ReservationStatus, limit int) ([]model.Reservation, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *MockReservationService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ReservationStatus) (*model.Reservation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

// MockPricingService mocks service.PricingService.
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Quote), args.Error(1)
}

func (m *MockPricingService) UpsertPriceList(ctx context.Context, clientID string, req dto.UpsertPriceListRequest) (*model.PriceList, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceList), args.Error(1)
}

func (m *MockPricingService) PriceList(ctx context.Context, clientID string) (*model.PriceList, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceList), args.Error(1)
}

// MockEventRequestService mocks service.EventRequestService.
type MockEventRequestService struct {
	mock.Mock
}

func (m *MockEventRequestService) Submit(ctx context.Context, req dto.SubmitEventRequestRequest) (*model.EventRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventRequest), args.Error(1)
}

func (m *MockEventRequestService) List(ctx context.Context, limit int) ([]model.EventRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EventRequest), args.Error(1)
}

// MockAuthService mocks service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password, name)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}

// MockLoggingService mocks service.LoggingService.
type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) Enqueue(entry *model.LogEntry) {
	m.Called(entry)
}

func (m *MockLoggingService) Close() {
	m.Called()
}
