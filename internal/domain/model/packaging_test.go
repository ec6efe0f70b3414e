package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagingSize_WeightKg(t *testing.T) {
	tests := []struct {
		size     PackagingSize
		expected float64
	}{
		{Packaging10g, 0.01},
		{Packaging18g, 0.018},
		{Packaging100g, 0.1},
		{Packaging250g, 0.25},
		{Packaging500g, 0.5},
		{Packaging1kg, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			w, err := tt.size.WeightKg()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, w)
		})
	}

	t.Run("unknown size fails loudly", func(t *testing.T) {
		_, err := PackagingSize("2kg").WeightKg()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownPackagingSize)
		assert.Contains(t, err.Error(), "2kg")
	})

	t.Run("empty size fails loudly", func(t *testing.T) {
		_, err := PackagingSize("").WeightKg()
		assert.ErrorIs(t, err, ErrUnknownPackagingSize)
	})
}

func TestPackagingSize_Valid(t *testing.T) {
	for _, size := range AllPackagingSizes {
		assert.True(t, size.Valid(), "expected %s to be valid", size)
	}
	assert.False(t, PackagingSize("750g").Valid())
	assert.False(t, PackagingSize("").Valid())
}

func TestPackagesOf(t *testing.T) {
	tests := []struct {
		name     string
		size     PackagingSize
		kg       float64
		expected int
	}{
		{name: "exact multiple", size: Packaging250g, kg: 2.5, expected: 10},
		{name: "rounds down", size: Packaging250g, kg: 2.6, expected: 10},
		{name: "just under one package", size: Packaging1kg, kg: 0.99, expected: 0},
		{name: "small sachets", size: Packaging10g, kg: 0.095, expected: 9},
		{name: "drip sachets", size: Packaging18g, kg: 1, expected: 55},
		{name: "zero weight", size: Packaging500g, kg: 0, expected: 0},
		{name: "negative weight", size: Packaging500g, kg: -1.5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PackagesOf(tt.size, tt.kg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown size propagates error", func(t *testing.T) {
		_, err := PackagesOf(PackagingSize("3kg"), 1)
		assert.ErrorIs(t, err, ErrUnknownPackagingSize)
	})
}

func TestBase250Ceil(t *testing.T) {
	tests := []struct {
		name     string
		kg       float64
		expected int
	}{
		{name: "exact multiple", kg: 1.0, expected: 4},
		{name: "rounds up", kg: 0.924, expected: 4},
		{name: "barely over", kg: 1.01, expected: 5},
		{name: "under one package", kg: 0.1, expected: 1},
		{name: "zero", kg: 0, expected: 0},
		{name: "negative", kg: -0.5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Base250Ceil(tt.kg))
		})
	}
}

func TestBase250Round(t *testing.T) {
	tests := []struct {
		name     string
		kg       float64
		expected int
	}{
		{name: "exact multiple", kg: 1.0, expected: 4},
		{name: "rounds down below midpoint", kg: 1.12, expected: 4},
		{name: "rounds up above midpoint", kg: 1.13, expected: 5},
		{name: "zero", kg: 0, expected: 0},
		{name: "negative", kg: -0.3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Base250Round(tt.kg))
		})
	}
}
