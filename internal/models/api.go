package models

import (
	"breakout_api/internal/helper"
)

const (
	APIName    = "Breakout Signal API"
	APIVersion = "1.0.0"

	NoSignalMessage   = "No Breakout signal detected"
	EmptyPriceDataMsg = "Price data cannot be empty"
)

// SignalRequest: тело POST /generate-signal.
type SignalRequest struct {
	Symbol    string   `json:"symbol" binding:"required,min=1"`
	PriceData []Candle `json:"price_data" binding:"required,min=1,dive"`
}

type SignalResponse struct {
	Type Side    `json:"type"`
	SL   float64 `json:"sl"`
	TP   Price   `json:"tp"`
}

func NewSignalResponse(s Signal) SignalResponse {
	return SignalResponse{Type: s.Type, SL: s.SL, TP: Price(s.TP)}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type Endpoints struct {
	Root           string `json:"root"`
	GenerateSignal string `json:"generate_signal"`
}

type RootResponse struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Endpoints Endpoints `json:"endpoints"`
}

// Price сериализуется ровно с двумя знаками после точки: 21 -> 21.00.
type Price float64

func (p Price) MarshalJSON() ([]byte, error) {
	s, err := helper.FormatPrice(float64(p), helper.PricePrecision)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
