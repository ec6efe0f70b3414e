package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a coffee in the catalog.
//
// Stock is denominated in 250g base packages (TotalPackagesInStock), while the
// coffee may be sold in any of its AvailableSizes. Availability per sale
// packaging is derived, never stored.
type Product struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Name is the commercial name of the coffee.
	Name string `bson:"name" json:"name" example:"Catuaí Amarelo"`
	// Producer is the farm or cooperative of origin.
	Producer string `bson:"producer,omitempty" json:"producer,omitempty"`
	// Process is the post-harvest process (natural, honey, washed).
	Process string `bson:"process,omitempty" json:"process,omitempty"`
	// TastingNotes is a free-form sensory description.
	TastingNotes string `bson:"tasting_notes,omitempty" json:"tasting_notes,omitempty"`
	// TotalPackagesInStock is the stock count in 250g base packages.
	TotalPackagesInStock int `bson:"total_packages_in_stock" json:"total_packages_in_stock"`
	// AvailableSizes lists the packaging sizes this coffee may be sold in.
	AvailableSizes []PackagingSize `bson:"available_sizes" json:"available_sizes"`
	Active         bool            `bson:"active" json:"active"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
}

// TotalStockKg returns the total stock weight in kilograms.
func (p Product) TotalStockKg() float64 {
	if p.TotalPackagesInStock <= 0 {
		return 0
	}
	return float64(p.TotalPackagesInStock) * BasePackageKg
}

// SoldIn reports whether the product may be sold in the given packaging size.
func (p Product) SoldIn(size PackagingSize) bool {
	for _, s := range p.AvailableSizes {
		if s == size {
			return true
		}
	}
	return false
}
