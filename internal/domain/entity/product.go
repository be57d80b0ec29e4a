package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo con stock por local.
// StockJujuy es el depósito de origen (donde se recibe mercadería) y
// StockCordoba el local de destino. El stock total es derivado, nunca
// se edita en forma independiente.
// UnitCost es el costo puesto-en-destino vigente: el motor de envíos lo
// sobreescribe con el costo prorrateado en cada despacho.
type Product struct {
	ID           string
	SKU          string
	Name         string
	Color        string
	Price        decimal.Decimal // precio de venta
	UnitCost     decimal.Decimal // costo unitario vigente (compra + flete prorrateado)
	StockJujuy   int             // stock en origen
	StockCordoba int             // stock en destino
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalStock devuelve el stock total como suma de ambos locales.
// Las unidades en tránsito ya fueron descontadas de Jujuy y todavía
// no acreditadas en Córdoba, por lo que no cuentan.
func (p *Product) TotalStock() int {
	return p.StockJujuy + p.StockCordoba
}
