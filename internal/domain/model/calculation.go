package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalculationResult is the output of either calculator variant.
//
// @Description Estimated coffee consumption for an event or internal use
type CalculationResult struct {
	// TotalKg is the estimated total consumption in kilograms.
	TotalKg float64 `bson:"total_kg" json:"total_kg" example:"0.924"`
	// PackagesOf250g is the number of 250g packages needed to cover TotalKg.
	PackagesOf250g int `bson:"packages_of_250g" json:"packages_of_250g" example:"4"`
	// KgPerDay is the average daily consumption.
	KgPerDay float64 `bson:"kg_per_day" json:"kg_per_day" example:"0.462"`
	// KgPerHour is the average hourly consumption. Zero for internal-use
	// calculations, which have no hours-per-day input.
	KgPerHour float64 `bson:"kg_per_hour,omitempty" json:"kg_per_hour,omitempty" example:"0.0578"`
}

// EventRequestKind distinguishes the two calculator variants.
type EventRequestKind string

const (
	// KindEvent estimates consumption for a sponsored event.
	KindEvent EventRequestKind = "event"
	// KindInternalUse estimates office consumption for a client company.
	KindInternalUse EventRequestKind = "internal_use"
)

// EventRequest is a persisted calculator submission: the inputs, the computed
// result, and the selection the client settled on. This is the record handed
// to logistics when an event or corporate order is confirmed.
type EventRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind       EventRequestKind   `bson:"kind" json:"kind"`
	ClientName string             `bson:"client_name" json:"client_name"`
	EventDate  time.Time          `bson:"event_date,omitempty" json:"event_date,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	// Inputs holds the raw calculator inputs as submitted.
	Inputs map[string]float64 `bson:"inputs" json:"inputs"`
	Result CalculationResult  `bson:"result" json:"result"`
	Lines  []SelectionLine    `bson:"lines,omitempty" json:"lines,omitempty"`
	// DeltaPackages is the advisory over/under-selection versus the target,
	// in 250g-equivalent packages, captured at submission time.
	DeltaPackages int       `bson:"delta_packages" json:"delta_packages"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
