package helper

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PricePrecision: знаков после точки у цен в ответе API.
const PricePrecision = 2

// RoundPrice округляет точное двоичное значение px до places знаков,
// ровные половинки к чётному: 1.005 -> 1.0, 2.675 -> 2.67, 0.125 -> 0.12.
// NaN и бесконечности возвращаются как есть.
func RoundPrice(px float64, places int32) float64 {
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return px
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(px, 'f', int(places), 64), 64)
	if err != nil {
		return px
	}
	return rounded
}

// FormatPrice: строка ровно с places знаками после точки.
func FormatPrice(px float64, places int32) (string, error) {
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return "", errors.Errorf("price is not finite: %v", px)
	}
	return decimal.NewFromFloat(px).StringFixed(places), nil
}

func MaxHigh(highs []float64) float64 {
	m := highs[0]
	for _, v := range highs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func MinLow(lows []float64) float64 {
	m := lows[0]
	for _, v := range lows[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
