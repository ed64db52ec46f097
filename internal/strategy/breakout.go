package strategy

import (
	"math"

	"breakout_api/internal/helper"
	"breakout_api/internal/models"
)

const (
	// BreakoutWindow: сколько свечей перед последней образуют опорный диапазон.
	BreakoutWindow = 3
	// RiskRewardRatio: TP = entry + RR * (entry - SL).
	RiskRewardRatio = 2.0
	// TakeProfitPrecision: знаков после точки у TP.
	TakeProfitPrecision = helper.PricePrecision

	minCandles = BreakoutWindow + 1
)

// DetectBreakout смотрит на хвост ряда: если последняя свеча закрылась выше
// максимума предыдущих BreakoutWindow свечей, возвращает BUY со стопом под
// минимумом этого окна. ok == false означает, что сигнала нет (в том числе
// при нехватке истории и когда TP не помещается в float64).
//
// Цены не проверяются, это делает вызывающий код.
func DetectBreakout(candles []models.Candle) (sig models.Signal, ok bool) {
	n := len(candles)
	if n < minCandles {
		return models.Signal{Type: models.SideNone}, false
	}

	last := candles[n-1]
	window := candles[n-minCandles : n-1]

	highs := make([]float64, 0, BreakoutWindow)
	lows := make([]float64, 0, BreakoutWindow)
	for _, c := range window {
		highs = append(highs, c.High)
		lows = append(lows, c.Low)
	}

	// строго выше: закрытие на уровне хая не пробой, NaN тоже
	if !(last.Close > helper.MaxHigh(highs)) {
		return models.Signal{Type: models.SideNone}, false
	}

	sl := helper.MinLow(lows)
	risk := last.Close - sl
	tp := last.Close + RiskRewardRatio*risk
	// у самого края float64 тейк улетает в +Inf: такой уровень не выставить
	if math.IsInf(tp, 0) {
		return models.Signal{Type: models.SideNone}, false
	}
	tp = helper.RoundPrice(tp, TakeProfitPrecision)

	return models.Signal{
		Type: models.SideBuy,
		SL:   sl,
		TP:   tp,
	}, true
}
