package model

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceList holds client-specific prices for 250g packages, with a private
// label base price as fallback for products without a negotiated price.
// All prices are in BRL.
type PriceList struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID string             `bson:"client_id" json:"client_id"`
	// Prices250g maps product ID (hex) to the negotiated price of one 250g package.
	Prices250g map[string]float64 `bson:"prices_250g" json:"prices_250g"`
	// PrivateLabel250g is the base price of one 250g private label package.
	PrivateLabel250g float64   `bson:"private_label_250g" json:"private_label_250g"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// PricePerKg returns the effective price per kilogram for a product, derived
// from the 250g package price. Falls back to the private label base price.
// The second return is false when neither price is set.
func (pl PriceList) PricePerKg(productID primitive.ObjectID) (float64, bool) {
	if p, ok := pl.Prices250g[productID.Hex()]; ok && p > 0 {
		return p / BasePackageKg, true
	}
	if pl.PrivateLabel250g > 0 {
		return pl.PrivateLabel250g / BasePackageKg, true
	}
	return 0, false
}

// RoundBRL rounds a monetary amount to 2 decimal places. Applied only at
// quote boundaries; intermediate sums keep full precision to avoid
// compounding rounding error.
func RoundBRL(v float64) float64 {
	return math.Round(v*100) / 100
}
