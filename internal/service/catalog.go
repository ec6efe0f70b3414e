package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/repository"
)

// defaultCatalogTTL bounds staleness of the public catalog view.
const defaultCatalogTTL = 10 * time.Second

// CatalogService serves the product catalog with derived availability and
// manages the catalog itself.
type CatalogService interface {
	// Catalog returns active products with per-size availability.
	Catalog(ctx context.Context) ([]dto.CatalogEntry, error)
	// Availability returns one product's entry with fresh availability.
	Availability(ctx context.Context, productID primitive.ObjectID) (*dto.CatalogEntry, error)
	// StockReport returns total, reserved and available weight per product,
	// including inactive products.
	StockReport(ctx context.Context) ([]dto.StockReportRow, error)
	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	// UpdateProduct replaces a product's attributes.
	UpdateProduct(ctx context.Context, id primitive.ObjectID, req dto.CreateProductRequest) (*model.Product, error)
	// AdjustStock sets a product's stock count in 250g base packages.
	AdjustStock(ctx context.Context, id primitive.ObjectID, totalPackages int) (*model.Product, error)
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	products     repository.ProductsRepositoryInterface
	reservations repository.ReservationsRepositoryInterface
	engine       StockEngine
	cache        *catalogCache
}

// CatalogOption configures the catalog service.
type CatalogOption func(*CatalogServiceImpl)

// WithCatalogTTL overrides the catalog cache TTL.
func WithCatalogTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.cache = newCatalogCache(ttl)
	}
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	products repository.ProductsRepositoryInterface,
	reservations repository.ReservationsRepositoryInterface,
	engine StockEngine,
	opts ...CatalogOption,
) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		products:     products,
		reservations: reservations,
		engine:       engine,
		cache:        newCatalogCache(defaultCatalogTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns active products with availability per sale packaging size.
func (s *CatalogServiceImpl) Catalog(ctx context.Context) ([]dto.CatalogEntry, error) {
	if cached := s.cache.get(); cached != nil {
		return cached, nil
	}

	products, err := s.products.List(ctx, true)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservations.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.CatalogEntry, 0, len(products))
	for _, product := range products {
		entry, err := s.buildEntry(product, reservations)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	s.cache.set(entries)
	return entries, nil
}

// Availability returns one product's catalog entry, bypassing the cache.
func (s *CatalogServiceImpl) Availability(ctx context.Context, productID primitive.ObjectID) (*dto.CatalogEntry, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	reservations, err := s.reservations.ListActiveByProducts(ctx, []primitive.ObjectID{productID})
	if err != nil {
		return nil, err
	}

	entry, err := s.buildEntry(*product, reservations)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// StockReport aggregates stock and reservation weight for every product.
func (s *CatalogServiceImpl) StockReport(ctx context.Context) ([]dto.StockReportRow, error) {
	products, err := s.products.List(ctx, false)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservations.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StockReportRow, 0, len(products))
	for _, product := range products {
		reserved, err := s.engine.ReservedKg(product.ID, reservations)
		if err != nil {
			return nil, err
		}
		available, err := s.engine.AvailableKg(product, reservations)
		if err != nil {
			return nil, err
		}

		active := 0
		for _, r := range reservations {
			if r.ProductID == product.ID && r.Status == model.ReservationActive {
				active++
			}
		}

		rows = append(rows, dto.StockReportRow{
			ProductID:          product.ID.Hex(),
			ProductName:        product.Name,
			TotalKg:            product.TotalStockKg(),
			ReservedKg:         reserved,
			AvailableKg:        available,
			ActiveReservations: active,
		})
	}
	return rows, nil
}

// CreateProduct adds a product to the catalog.
func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:                 req.Name,
		Producer:             req.Producer,
		Process:              req.Process,
		TastingNotes:         req.TastingNotes,
		TotalPackagesInStock: req.TotalPackages,
		AvailableSizes:       req.AvailableSizes,
		Active:               true,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.invalidate()
	return product, nil
}

// UpdateProduct replaces a product's attributes.
func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id primitive.ObjectID, req dto.CreateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrProductNotFound
	}

	current.Name = req.Name
	current.Producer = req.Producer
	current.Process = req.Process
	current.TastingNotes = req.TastingNotes
	current.TotalPackagesInStock = req.TotalPackages
	current.AvailableSizes = req.AvailableSizes

	if err := s.products.Update(ctx, current); err != nil {
		return nil, err
	}

	s.cache.invalidate()
	return current, nil
}

// AdjustStock sets a product's stock count in 250g base packages.
func (s *CatalogServiceImpl) AdjustStock(ctx context.Context, id primitive.ObjectID, totalPackages int) (*model.Product, error) {
	if totalPackages < 0 {
		return nil, &dto.ValidationError{Field: "total_packages_in_stock", Message: "must not be negative"}
	}

	updated, err := s.products.SetStock(ctx, id, totalPackages)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}

	s.cache.invalidate()
	return updated, nil
}

// buildEntry computes one product's availability across its sale sizes.
func (s *CatalogServiceImpl) buildEntry(product model.Product, reservations []model.Reservation) (dto.CatalogEntry, error) {
	availableKg, err := s.engine.AvailableKg(product, reservations)
	if err != nil {
		return dto.CatalogEntry{}, err
	}

	availability := make([]dto.SizeAvailability, 0, len(product.AvailableSizes))
	for _, size := range product.AvailableSizes {
		packages, err := s.engine.AvailablePackages(product, size, reservations)
		if err != nil {
			return dto.CatalogEntry{}, err
		}
		availability = append(availability, dto.SizeAvailability{
			PackagingSize:     size,
			AvailablePackages: packages,
		})
	}

	return dto.CatalogEntry{
		Product:      product,
		AvailableKg:  availableKg,
		Availability: availability,
	}, nil
}
