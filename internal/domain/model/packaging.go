// Package model defines the core domain entities for the coffee stock service.
package model

import (
	"errors"
	"fmt"
	"math"
)

// PackagingSize is a discrete retail unit a coffee may be sold in.
// The set of labels and their kilogram weights form a fixed vocabulary
// that consumers must treat as a compatibility contract.
type PackagingSize string

const (
	// Packaging10g is a 10 gram sample sachet.
	Packaging10g PackagingSize = "10g"
	// Packaging18g is an 18 gram single-dose drip sachet.
	Packaging18g PackagingSize = "18g"
	// Packaging100g is a 100 gram pouch.
	Packaging100g PackagingSize = "100g"
	// Packaging250g is the standard 250 gram pouch and the base stock unit.
	Packaging250g PackagingSize = "250g"
	// Packaging500g is a 500 gram pouch.
	Packaging500g PackagingSize = "500g"
	// Packaging1kg is a 1 kilogram bag.
	Packaging1kg PackagingSize = "1kg"
)

// BasePackageKg is the weight of the base stock unit. Product stock counts
// are always recorded in 250g packages regardless of sale packaging.
const BasePackageKg = 0.25

// ErrUnknownPackagingSize is returned when a packaging label is not in the
// weight table. Unrecognized labels fail loudly instead of being coerced to
// the base package weight.
var ErrUnknownPackagingSize = errors.New("unknown packaging size")

// packagingWeightsKg maps each packaging label to its weight in kilograms.
var packagingWeightsKg = map[PackagingSize]float64{
	Packaging10g:  0.01,
	Packaging18g:  0.018,
	Packaging100g: 0.1,
	Packaging250g: 0.25,
	Packaging500g: 0.5,
	Packaging1kg:  1,
}

// AllPackagingSizes lists every supported packaging label, smallest first.
var AllPackagingSizes = []PackagingSize{
	Packaging10g,
	Packaging18g,
	Packaging100g,
	Packaging250g,
	Packaging500g,
	Packaging1kg,
}

// WeightKg returns the weight in kilograms of a single package of this size.
func (p PackagingSize) WeightKg() (float64, error) {
	w, ok := packagingWeightsKg[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPackagingSize, string(p))
	}
	return w, nil
}

// Valid reports whether the packaging label is part of the fixed vocabulary.
func (p PackagingSize) Valid() bool {
	_, ok := packagingWeightsKg[p]
	return ok
}

// PackagesOf converts a weight in kilograms into whole packages of the given
// size, rounding down.
func PackagesOf(size PackagingSize, kg float64) (int, error) {
	w, err := size.WeightKg()
	if err != nil {
		return 0, err
	}
	if kg <= 0 {
		return 0, nil
	}
	return int(math.Floor(kg / w)), nil
}

// Base250Ceil converts a weight in kilograms into 250g packages, rounding up.
// Used by the calculators to size an order that must cover the target weight.
func Base250Ceil(kg float64) int {
	if kg <= 0 {
		return 0
	}
	return int(math.Ceil(kg / BasePackageKg))
}

// Base250Round converts a weight in kilograms into the nearest count of
// 250g-equivalent packages. Used to compare heterogeneous selections against
// a calculation target.
func Base250Round(kg float64) int {
	if kg <= 0 {
		return 0
	}
	return int(math.Round(kg / BasePackageKg))
}
