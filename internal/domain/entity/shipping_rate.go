package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingRate es la tarifa de referencia de un transporte hacia un destino.
// Tabla de consulta pura: sugiere el costo de flete al armar un paquete, el
// operador siempre puede pisar el valor.
type ShippingRate struct {
	ID          string
	Courier     string
	Destination string
	BaseRate    decimal.Decimal
	PerKgRate   *decimal.Decimal // nil = el transporte no cobra por kilo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SuggestedCost calcula el costo sugerido para un peso dado (en kg).
// Con peso cero o sin tarifa por kilo devuelve solo la base.
func (r *ShippingRate) SuggestedCost(weightKg decimal.Decimal) decimal.Decimal {
	if r.PerKgRate == nil || weightKg.LessThanOrEqual(decimal.Zero) {
		return r.BaseRate
	}
	return r.BaseRate.Add(r.PerKgRate.Mul(weightKg))
}
