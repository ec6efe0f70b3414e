package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	// ReservationActive counts against available stock.
	ReservationActive ReservationStatus = "active"
	// ReservationDelivered is terminal; the stock left the warehouse.
	ReservationDelivered ReservationStatus = "delivered"
	// ReservationCancelled is terminal; the stock is released.
	ReservationCancelled ReservationStatus = "cancelled"
)

// Valid reports whether the status is one of the known states.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationActive, ReservationDelivered, ReservationCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationDelivered || s == ReservationCancelled
}

// Reservation represents a customer's claim on stock for one product in one
// packaging size. Only active reservations decrement availability.
type Reservation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID     primitive.ObjectID `bson:"product_id" json:"product_id"`
	ClientName    string             `bson:"client_name" json:"client_name"`
	ClientEmail   string             `bson:"client_email,omitempty" json:"client_email,omitempty"`
	PackagingSize PackagingSize      `bson:"packaging_size" json:"packaging_size"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Status        ReservationStatus  `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ReservedKg returns the reservation's weight in kilograms.
func (r Reservation) ReservedKg() (float64, error) {
	w, err := r.PackagingSize.WeightKg()
	if err != nil {
		return 0, err
	}
	return float64(r.Quantity) * w, nil
}

// SelectionLine is one product/packaging/quantity choice while a user builds
// a reservation. Lines exist only for the duration of a session.
type SelectionLine struct {
	ProductID     primitive.ObjectID `bson:"product_id" json:"product_id" binding:"required"`
	PackagingSize PackagingSize      `bson:"packaging_size" json:"packaging_size" binding:"required"`
	Quantity      int                `bson:"quantity" json:"quantity" binding:"required,gt=0"`
}

// EquivalentKg returns the line's weight in kilograms.
func (l SelectionLine) EquivalentKg() (float64, error) {
	w, err := l.PackagingSize.WeightKg()
	if err != nil {
		return 0, err
	}
	return float64(l.Quantity) * w, nil
}
