// Package service implements the business logic of the coffee stock service.
package service

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/metrics"
)

// StockSnapshot is a point-in-time view of the catalog and its reservations.
// Availability computed from a snapshot is stale the moment it is read;
// callers that persist reservations must re-validate against a fresh snapshot
// immediately before writing.
type StockSnapshot struct {
	Products     []model.Product
	Reservations []model.Reservation
}

// Product returns the snapshot's product with the given ID.
func (s StockSnapshot) Product(id primitive.ObjectID) (model.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// OverstockError reports a selection line that exceeds computed availability.
type OverstockError struct {
	ProductID     primitive.ObjectID
	PackagingSize model.PackagingSize
	Requested     int
	Available     int
}

func (e *OverstockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s in %s: requested %d, available %d",
		e.ProductID.Hex(), e.PackagingSize, e.Requested, e.Available)
}

// Reconciliation compares a selection against a calculation target.
type Reconciliation struct {
	// TotalSelectedKg is the selection's weight in kilograms.
	TotalSelectedKg float64 `json:"total_selected_kg"`
	// SelectedPackages250 is the selection expressed in 250g-equivalent packages.
	SelectedPackages250 int `json:"selected_packages_250g"`
	// TargetPackages250 is the calculation result's package count.
	TargetPackages250 int `json:"target_packages_250g"`
	// DeltaPackages is positive on over-selection, negative on under-selection.
	// Advisory only; a mismatch does not block submission.
	DeltaPackages int `json:"delta_packages"`
}

// StockEngine computes availability from snapshots and validates selections.
// All methods are pure functions of their inputs.
type StockEngine interface {
	// ReservedKg sums the weight of a product's active reservations.
	ReservedKg(productID primitive.ObjectID, reservations []model.Reservation) (float64, error)
	// AvailableKg returns the product's unreserved stock weight, never negative.
	AvailableKg(product model.Product, reservations []model.Reservation) (float64, error)
	// AvailablePackages expresses AvailableKg in whole packages of the given size.
	AvailablePackages(product model.Product, size model.PackagingSize, reservations []model.Reservation) (int, error)
	// Reconcile computes the advisory delta between a selection and a target.
	Reconcile(result model.CalculationResult, lines []model.SelectionLine) (Reconciliation, error)
	// ValidateSelection checks every line against the snapshot. Returns an
	// *OverstockError on the first line whose quantity exceeds availability.
	ValidateSelection(lines []model.SelectionLine, snap StockSnapshot) error
}

// StockEngineService implements StockEngine.
type StockEngineService struct{}

// NewStockEngine creates a new stock engine.
func NewStockEngine() *StockEngineService {
	return &StockEngineService{}
}

// ReservedKg sums the weight of the product's active reservations. Reservations
// for other products or in terminal states are ignored.
func (s *StockEngineService) ReservedKg(productID primitive.ObjectID, reservations []model.Reservation) (float64, error) {
	var reserved float64
	for _, r := range reservations {
		if r.ProductID != productID || r.Status != model.ReservationActive {
			continue
		}
		kg, err := r.ReservedKg()
		if err != nil {
			return 0, err
		}
		reserved += kg
	}
	return reserved, nil
}

// AvailableKg returns the product's stock weight minus its active reservations,
// floored at zero.
func (s *StockEngineService) AvailableKg(product model.Product, reservations []model.Reservation) (float64, error) {
	reserved, err := s.ReservedKg(product.ID, reservations)
	if err != nil {
		return 0, err
	}
	return math.Max(0, product.TotalStockKg()-reserved), nil
}

// AvailablePackages expresses the product's available weight in whole packages
// of the given size.
func (s *StockEngineService) AvailablePackages(product model.Product, size model.PackagingSize, reservations []model.Reservation) (int, error) {
	availableKg, err := s.AvailableKg(product, reservations)
	if err != nil {
		return 0, err
	}
	packages, err := model.PackagesOf(size, availableKg)
	if err != nil {
		return 0, err
	}
	metrics.RecordAvailabilityComputation()
	return packages, nil
}

// Reconcile converts the selection to 250g-equivalent packages and compares it
// against the calculation target. The delta is advisory only.
func (s *StockEngineService) Reconcile(result model.CalculationResult, lines []model.SelectionLine) (Reconciliation, error) {
	var totalKg float64
	for _, line := range lines {
		kg, err := line.EquivalentKg()
		if err != nil {
			return Reconciliation{}, err
		}
		totalKg += kg
	}

	selected := model.Base250Round(totalKg)
	return Reconciliation{
		TotalSelectedKg:     totalKg,
		SelectedPackages250: selected,
		TargetPackages250:   result.PackagesOf250g,
		DeltaPackages:       selected - result.PackagesOf250g,
	}, nil
}

// ValidateSelection checks each line's quantity against the availability left
// after the preceding lines of the same product. Earlier lines consume weight
// from the same stock, so a selection cannot pass by splitting an oversized
// request across packaging sizes.
func (s *StockEngineService) ValidateSelection(lines []model.SelectionLine, snap StockSnapshot) error {
	consumedKg := make(map[primitive.ObjectID]float64, len(lines))

	for _, line := range lines {
		product, ok := snap.Product(line.ProductID)
		if !ok {
			metrics.RecordReservationValidation("product_not_found")
			return fmt.Errorf("product %s not in snapshot", line.ProductID.Hex())
		}

		availableKg, err := s.AvailableKg(product, snap.Reservations)
		if err != nil {
			return err
		}
		availableKg = math.Max(0, availableKg-consumedKg[line.ProductID])

		available, err := model.PackagesOf(line.PackagingSize, availableKg)
		if err != nil {
			return err
		}

		if line.Quantity > available {
			metrics.RecordReservationValidation("overstock")
			return &OverstockError{
				ProductID:     line.ProductID,
				PackagingSize: line.PackagingSize,
				Requested:     line.Quantity,
				Available:     available,
			}
		}

		lineKg, err := line.EquivalentKg()
		if err != nil {
			return err
		}
		consumedKg[line.ProductID] += lineKg
	}

	metrics.RecordReservationValidation("ok")
	return nil
}
