package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		name   string
		px     float64
		places int32
		want   float64
	}{
		{"already rounded", 21, 2, 21},
		{"round down", 12.344, 2, 12.34},
		{"round up", 12.346, 2, 12.35},
		{"1.005 is stored below the half", 1.005, 2, 1.0},
		{"2.675 is stored below the half", 2.675, 2, 2.67},
		{"2.005 is stored below the half", 2.005, 2, 2.0},
		{"1.345 is stored below the half", 1.345, 2, 1.34},
		{"exact half goes to even, down", 0.125, 2, 0.12},
		{"exact half goes to even, up", 0.375, 2, 0.38},
		{"many digits", 105.123456789, 2, 105.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundPrice(tt.px, tt.places))
		})
	}
}

func TestRoundPrice_NonFinite(t *testing.T) {
	assert.True(t, math.IsInf(RoundPrice(math.Inf(1), 2), 1))
	assert.True(t, math.IsNaN(RoundPrice(math.NaN(), 2)))
	assert.Equal(t, math.MaxFloat64, RoundPrice(math.MaxFloat64, 2))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		px   float64
		want string
	}{
		{21, "21.00"},
		{20.5, "20.50"},
		{0.1, "0.10"},
		{1.4, "1.40"},
	}
	for _, tt := range tests {
		got, err := FormatPrice(tt.px, PricePrecision)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FormatPrice(math.Inf(1), PricePrecision)
	assert.Error(t, err)
	_, err = FormatPrice(math.NaN(), PricePrecision)
	assert.Error(t, err)
}

func TestMaxHighMinLow(t *testing.T) {
	xs := []float64{10, 12, 11, 12}
	assert.Equal(t, 12.0, MaxHigh(xs))
	assert.Equal(t, 10.0, MinLow(xs))
	assert.Equal(t, 5.0, MaxHigh([]float64{5}))
}
