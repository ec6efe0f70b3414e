package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/metrics"
	"github.com/cafelagoa/stock-service/internal/repository"
)

var (
	// ErrProductNotFound is returned when a selection references an unknown product.
	ErrProductNotFound = errors.New("product not found")
	// ErrPackagingNotSold is returned when a selection uses a packaging size the
	// product is not sold in.
	ErrPackagingNotSold = errors.New("product is not sold in this packaging size")
	// ErrReservationNotFound is returned when a reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrReservationFinal is returned on a status transition from a terminal state.
	ErrReservationFinal = errors.New("reservation is already delivered or cancelled")
)

// productLocks serializes reservation submissions per product. Two concurrent
// submissions touching the same product take turns between re-validation and
// persistence, so a single instance cannot oversell. Locks are taken in
// sorted ID order to avoid deadlock between multi-product selections.
type productLocks struct {
	mu    sync.Mutex
	locks map[primitive.ObjectID]*sync.Mutex
}

func newProductLocks() *productLocks {
	return &productLocks{locks: make(map[primitive.ObjectID]*sync.Mutex)}
}

// acquire locks the given products and returns the matching release function.
func (l *productLocks) acquire(ids []primitive.ObjectID) func() {
	sorted := make([]primitive.ObjectID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Hex() < sorted[j].Hex() })

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, id := range sorted {
		l.mu.Lock()
		m, ok := l.locks[id]
		if !ok {
			m = &sync.Mutex{}
			l.locks[id] = m
		}
		l.mu.Unlock()

		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// ReservationService manages the reservation lifecycle.
type ReservationService interface {
	// Create validates the selection against a fresh stock snapshot and
	// persists one reservation per line. Returns *OverstockError when a line
	// exceeds availability.
	Create(ctx context.Context, req dto.CreateReservationRequest) ([]model.Reservation, error)
	// List returns reservations, optionally filtered by status.
	List(ctx context.Context, status model.ReservationStatus, limit int) ([]model.Reservation, error)
	// UpdateStatus transitions a reservation. Terminal states cannot be left.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ReservationStatus) (*model.Reservation, error)
}

// ReservationServiceImpl implements ReservationService.
type ReservationServiceImpl struct {
	products     repository.ProductsRepositoryInterface
	reservations repository.ReservationsRepositoryInterface
	engine       StockEngine
	locks        *productLocks
}

// NewReservationService creates a new reservation service.
func NewReservationService(
	products repository.ProductsRepositoryInterface,
	reservations repository.ReservationsRepositoryInterface,
	engine StockEngine,
) *ReservationServiceImpl {
	return &ReservationServiceImpl{
		products:     products,
		reservations: reservations,
		engine:       engine,
		locks:        newProductLocks(),
	}
}

// Create re-validates the selection against freshly read stock while holding
// the per-product locks, then persists. Input-time availability checks are
// only advisory; this is the check that counts.
func (s *ReservationServiceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) ([]model.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	productIDs := distinctProductIDs(req.Lines)

	release := s.locks.acquire(productIDs)
	defer release()

	snap, err := s.freshSnapshot(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Lines {
		product, ok := snap.Product(line.ProductID)
		if !ok {
			return nil, ErrProductNotFound
		}
		if !product.SoldIn(line.PackagingSize) {
			return nil, ErrPackagingNotSold
		}
	}

	if err := s.engine.ValidateSelection(req.Lines, snap); err != nil {
		return nil, err
	}

	reservations := make([]model.Reservation, len(req.Lines))
	for i, line := range req.Lines {
		reservations[i] = model.Reservation{
			ProductID:     line.ProductID,
			ClientName:    req.ClientName,
			ClientEmail:   req.ClientEmail,
			PackagingSize: line.PackagingSize,
			Quantity:      line.Quantity,
			Status:        model.ReservationActive,
		}
	}

	created, err := s.reservations.Create(ctx, reservations)
	if err != nil {
		return nil, err
	}

	metrics.RecordReservationCreated(len(created))
	return created, nil
}

// List returns reservations, optionally filtered by status.
func (s *ReservationServiceImpl) List(ctx context.Context, status model.ReservationStatus, limit int) ([]model.Reservation, error) {
	return s.reservations.List(ctx, status, limit)
}

// UpdateStatus transitions a reservation to the given status.
func (s *ReservationServiceImpl) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ReservationStatus) (*model.Reservation, error) {
	current, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrReservationNotFound
	}
	if current.Status.Terminal() {
		return nil, ErrReservationFinal
	}

	updated, err := s.reservations.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReservationNotFound
	}
	return updated, nil
}

// freshSnapshot reads the selection's products and their active reservations.
func (s *ReservationServiceImpl) freshSnapshot(ctx context.Context, productIDs []primitive.ObjectID) (StockSnapshot, error) {
	snap := StockSnapshot{}
	for _, id := range productIDs {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			return StockSnapshot{}, err
		}
		if product == nil {
			return StockSnapshot{}, ErrProductNotFound
		}
		snap.Products = append(snap.Products, *product)
	}

	reservations, err := s.reservations.ListActiveByProducts(ctx, productIDs)
	if err != nil {
		return StockSnapshot{}, err
	}
	snap.Reservations = reservations
	return snap, nil
}

// distinctProductIDs returns the unique product IDs referenced by the lines.
func distinctProductIDs(lines []model.SelectionLine) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(lines))
	ids := make([]primitive.ObjectID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}
