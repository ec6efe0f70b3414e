package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_TotalStockKg(t *testing.T) {
	tests := []struct {
		name     string
		packages int
		expected float64
	}{
		{name: "typical stock", packages: 100, expected: 25},
		{name: "single package", packages: 1, expected: 0.25},
		{name: "empty stock", packages: 0, expected: 0},
		{name: "negative count floors at zero", packages: -4, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{TotalPackagesInStock: tt.packages}
			assert.Equal(t, tt.expected, p.TotalStockKg())
		})
	}
}

func TestProduct_SoldIn(t *testing.T) {
	p := Product{
		Name:           "Catuaí Amarelo",
		AvailableSizes: []PackagingSize{Packaging250g, Packaging1kg},
	}

	assert.True(t, p.SoldIn(Packaging250g))
	assert.True(t, p.SoldIn(Packaging1kg))
	assert.False(t, p.SoldIn(Packaging10g))
	assert.False(t, p.SoldIn(Packaging500g))

	t.Run("no sizes configured", func(t *testing.T) {
		empty := Product{}
		assert.False(t, empty.SoldIn(Packaging250g))
	})
}
