package dto

import "github.com/shopspring/decimal"

// SaveRateRequest body para crear o actualizar una tarifa.
type SaveRateRequest struct {
	Courier     string           `json:"courier"`
	Destination string           `json:"destination"`
	BaseRate    decimal.Decimal  `json:"base_rate"`
	PerKgRate   *decimal.Decimal `json:"per_kg_rate,omitempty"`
}

// RateResponse una tarifa para respuestas HTTP.
type RateResponse struct {
	ID          string           `json:"id"`
	Courier     string           `json:"courier"`
	Destination string           `json:"destination"`
	BaseRate    decimal.Decimal  `json:"base_rate"`
	PerKgRate   *decimal.Decimal `json:"per_kg_rate,omitempty"`
}

// RateLookupResponse resultado de GET /api/rates/lookup. SuggestedCost es
// base + por_kg * peso; el operador puede pisarlo al armar el paquete.
type RateLookupResponse struct {
	RateResponse
	SuggestedCost decimal.Decimal `json:"suggested_cost"`
}
