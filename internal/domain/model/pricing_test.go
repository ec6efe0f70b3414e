package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPriceList_PricePerKg(t *testing.T) {
	productID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	t.Run("negotiated price wins", func(t *testing.T) {
		pl := PriceList{
			Prices250g:       map[string]float64{productID.Hex(): 18.50},
			PrivateLabel250g: 12.00,
		}
		price, ok := pl.PricePerKg(productID)
		assert.True(t, ok)
		assert.InDelta(t, 74.00, price, 1e-9)
	})

	t.Run("falls back to private label", func(t *testing.T) {
		pl := PriceList{
			Prices250g:       map[string]float64{productID.Hex(): 18.50},
			PrivateLabel250g: 12.00,
		}
		price, ok := pl.PricePerKg(otherID)
		assert.True(t, ok)
		assert.InDelta(t, 48.00, price, 1e-9)
	})

	t.Run("zero negotiated price falls back", func(t *testing.T) {
		pl := PriceList{
			Prices250g:       map[string]float64{productID.Hex(): 0},
			PrivateLabel250g: 10.00,
		}
		price, ok := pl.PricePerKg(productID)
		assert.True(t, ok)
		assert.InDelta(t, 40.00, price, 1e-9)
	})

	t.Run("no price at all", func(t *testing.T) {
		pl := PriceList{}
		_, ok := pl.PricePerKg(productID)
		assert.False(t, ok)
	})
}

func TestRoundBRL(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "rounds up", in: 10.555, expected: 10.56},
		{name: "rounds down", in: 10.554, expected: 10.55},
		{name: "already exact", in: 99.90, expected: 99.90},
		{name: "zero", in: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundBRL(tt.in), 1e-9)
		})
	}
}
