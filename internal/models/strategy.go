package models

import (
	"math"

	"github.com/pkg/errors"
)

// Side как в раннере: "BUY" или пустая строка (сигнала нет).
type Side string

const (
	SideNone Side = ""
	SideBuy  Side = "BUY"
)

// Candle: одна OHLC-свеча. Порядок задаётся позицией в срезе: старые первыми.
type Candle struct {
	Open  float64 `json:"open" binding:"gt=0"`
	High  float64 `json:"high" binding:"gt=0"`
	Low   float64 `json:"low" binding:"gt=0"`
	Close float64 `json:"close" binding:"gt=0"`
}

// Validate ловит то, что не отсекают теги: NaN и бесконечности.
func (c Candle) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"open", c.Open},
		{"high", c.High},
		{"low", c.Low},
		{"close", c.Close},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Errorf("%s must be a finite number", f.name)
		}
	}
	return nil
}

// Signal: ответ детектора пробоя.
type Signal struct {
	Type Side
	SL   float64 // стоп-лосс
	TP   float64 // тейк-профит, уже округлён до 2 знаков
}
