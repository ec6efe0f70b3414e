// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"time"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// EventCalculationRequest represents the JSON request body for the event calculator.
//
// @Description Inputs for estimating coffee consumption at a sponsored event
// @Example {"people_per_day": 100, "days": 2, "attendance_rate": 60, "hours_per_day": 8, "ml_per_cup": 70, "waste_factor": 10}
type EventCalculationRequest struct {
	// PeoplePerDay is the expected number of attendees per event day.
	PeoplePerDay int `json:"people_per_day" binding:"required,gt=0" example:"100"`
	// Days is the event duration in days.
	Days int `json:"days" binding:"required,gt=0" example:"2"`
	// AttendanceRate is the share of attendees expected to drink coffee, in percent.
	AttendanceRate float64 `json:"attendance_rate" binding:"required,gt=0,lte=100" example:"60"`
	// HoursPerDay is the serving window per day, in hours.
	HoursPerDay float64 `json:"hours_per_day" binding:"required,gt=0" example:"8"`
	// MlPerCup is the serving size in milliliters.
	MlPerCup float64 `json:"ml_per_cup" binding:"required,gt=0" example:"70"`
	// WasteFactor is the percentage markup for spillage and grinding loss.
	WasteFactor float64 `json:"waste_factor" binding:"gte=0" example:"10"`
} // @name EventCalculationRequest

// Validate performs custom validation on the request. Division inputs are
// checked here so a zero never reaches the arithmetic.
func (r *EventCalculationRequest) Validate() error {
	if r.PeoplePerDay <= 0 {
		return &ValidationError{Field: "people_per_day", Message: "must be a positive integer"}
	}
	if r.Days <= 0 {
		return &ValidationError{Field: "days", Message: "must be a positive integer"}
	}
	if r.AttendanceRate <= 0 || r.AttendanceRate > 100 {
		return &ValidationError{Field: "attendance_rate", Message: "must be between 0 and 100"}
	}
	if r.HoursPerDay <= 0 {
		return &ValidationError{Field: "hours_per_day", Message: "must be greater than zero"}
	}
	if r.MlPerCup <= 0 {
		return &ValidationError{Field: "ml_per_cup", Message: "must be greater than zero"}
	}
	if r.WasteFactor < 0 {
		return &ValidationError{Field: "waste_factor", Message: "must not be negative"}
	}
	return nil
}

// InternalUseCalculationRequest represents the JSON request body for the
// internal-use (office consumption) calculator.
//
// @Description Inputs for estimating office coffee consumption
// @Example {"employee_count": 10, "days": 30, "cups_per_day": 3, "cup_size_ml": 100, "waste_factor": 10}
type InternalUseCalculationRequest struct {
	// EmployeeCount is the number of coffee-drinking employees.
	EmployeeCount int `json:"employee_count" binding:"required,gt=0" example:"10"`
	// Days is the supply period in days.
	Days int `json:"days" binding:"required,gt=0" example:"30"`
	// CupsPerDay is the cups per employee per day.
	CupsPerDay int `json:"cups_per_day" binding:"required,gt=0" example:"3"`
	// CupSizeMl is the cup size in milliliters.
	CupSizeMl float64 `json:"cup_size_ml" binding:"required,gt=0" example:"100"`
	// WasteFactor is the percentage markup for spillage and grinding loss.
	WasteFactor float64 `json:"waste_factor" binding:"gte=0" example:"10"`
} // @name InternalUseCalculationRequest

// Validate performs custom validation on the request.
func (r *InternalUseCalculationRequest) Validate() error {
	if r.EmployeeCount <= 0 {
		return &ValidationError{Field: "employee_count", Message: "must be a positive integer"}
	}
	if r.Days <= 0 {
		return &ValidationError{Field: "days", Message: "must be a positive integer"}
	}
	if r.CupsPerDay <= 0 {
		return &ValidationError{Field: "cups_per_day", Message: "must be a positive integer"}
	}
	if r.CupSizeMl <= 0 {
		return &ValidationError{Field: "cup_size_ml", Message: "must be greater than zero"}
	}
	if r.WasteFactor < 0 {
		return &ValidationError{Field: "waste_factor", Message: "must not be negative"}
	}
	return nil
}

// CreateReservationRequest represents the JSON request body for the public
// reservation endpoint. Each selection line becomes one reservation record.
//
// @Description Request to reserve coffee for a client
type CreateReservationRequest struct {
	// ClientName identifies the client making the reservation.
	ClientName string `json:"client_name" binding:"required" example:"Padaria Santa Clara"`
	// ClientEmail is used for confirmation, optional.
	ClientEmail string `json:"client_email,omitempty" binding:"omitempty,email" example:"compras@santaclara.com.br"`
	// Lines is the selection being reserved.
	Lines []model.SelectionLine `json:"lines" binding:"required,min=1,dive"`
} // @name CreateReservationRequest

// Validate performs custom validation on the request.
func (r *CreateReservationRequest) Validate() error {
	if r.ClientName == "" {
		return &ValidationError{Field: "client_name", Message: "is required"}
	}
	if len(r.Lines) == 0 {
		return &ValidationError{Field: "lines", Message: "at least one selection line is required"}
	}
	for _, line := range r.Lines {
		if line.Quantity <= 0 {
			return &ValidationError{Field: "lines.quantity", Message: "must be a positive integer"}
		}
		if !line.PackagingSize.Valid() {
			return &ValidationError{Field: "lines.packaging_size", Message: "unknown packaging size " + string(line.PackagingSize)}
		}
	}
	return nil
}

// UpdateReservationStatusRequest transitions a reservation to a terminal state.
type UpdateReservationStatusRequest struct {
	// Status is the new status, "delivered" or "cancelled".
	Status model.ReservationStatus `json:"status" binding:"required" example:"delivered"`
} // @name UpdateReservationStatusRequest

// Validate performs custom validation on the request.
func (r *UpdateReservationStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return &ValidationError{Field: "status", Message: "must be one of active, delivered, cancelled"}
	}
	return nil
}

// ReconcileRequest compares a selection against a calculation target.
type ReconcileRequest struct {
	// Result is the calculation the selection should cover.
	Result model.CalculationResult `json:"result" binding:"required"`
	// Lines is the selection to compare.
	Lines []model.SelectionLine `json:"lines" binding:"required,min=1,dive"`
} // @name ReconcileRequest

// QuoteRequest prices a selection against a client's price list.
type QuoteRequest struct {
	// ClientID identifies the client whose price list applies.
	ClientID string `json:"client_id" binding:"required" example:"santa-clara"`
	// Lines is the selection to price.
	Lines []model.SelectionLine `json:"lines" binding:"required,min=1,dive"`
} // @name QuoteRequest

// CreateProductRequest creates or replaces a product in the catalog.
type CreateProductRequest struct {
	Name           string                `json:"name" binding:"required" example:"Catuaí Amarelo"`
	Producer       string                `json:"producer,omitempty"`
	Process        string                `json:"process,omitempty" example:"natural"`
	TastingNotes   string                `json:"tasting_notes,omitempty"`
	TotalPackages  int                   `json:"total_packages_in_stock" binding:"gte=0"`
	AvailableSizes []model.PackagingSize `json:"available_sizes" binding:"required,min=1"`
} // @name CreateProductRequest

// Validate performs custom validation on the request.
func (r *CreateProductRequest) Validate() error {
	if r.TotalPackages < 0 {
		return &ValidationError{Field: "total_packages_in_stock", Message: "must not be negative"}
	}
	for _, s := range r.AvailableSizes {
		if !s.Valid() {
			return &ValidationError{Field: "available_sizes", Message: "unknown packaging size " + string(s)}
		}
	}
	return nil
}

// AdjustStockRequest sets a product's stock count in 250g base packages.
type AdjustStockRequest struct {
	// TotalPackages is the new stock count in 250g packages.
	TotalPackages int `json:"total_packages_in_stock" binding:"gte=0"`
} // @name AdjustStockRequest

// UpsertPriceListRequest replaces a client's price list.
type UpsertPriceListRequest struct {
	// Prices250g maps product ID to the negotiated 250g package price in BRL.
	Prices250g map[string]float64 `json:"prices_250g"`
	// PrivateLabel250g is the fallback 250g private label price in BRL.
	PrivateLabel250g float64 `json:"private_label_250g" binding:"gte=0"`
} // @name UpsertPriceListRequest

// SubmitEventRequestRequest persists a calculator submission together with
// the selection the client settled on.
type SubmitEventRequestRequest struct {
	Kind       model.EventRequestKind `json:"kind" binding:"required" example:"event"`
	ClientName string                 `json:"client_name" binding:"required"`
	EventDate  time.Time              `json:"event_date,omitempty"`
	Location   string                 `json:"location,omitempty"`
	// Inputs are the raw calculator inputs as submitted.
	Inputs map[string]float64 `json:"inputs" binding:"required"`
	Lines  []model.SelectionLine `json:"lines,omitempty" binding:"omitempty,dive"`
} // @name SubmitEventRequestRequest

// Validate performs custom validation on the request.
func (r *SubmitEventRequestRequest) Validate() error {
	if r.Kind != model.KindEvent && r.Kind != model.KindInternalUse {
		return &ValidationError{Field: "kind", Message: "must be event or internal_use"}
	}
	if r.ClientName == "" {
		return &ValidationError{Field: "client_name", Message: "is required"}
	}
	if len(r.Inputs) == 0 {
		return &ValidationError{Field: "inputs", Message: "is required"}
	}
	return nil
}
