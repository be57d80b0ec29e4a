package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. El stock inicia en cero
// y se mueve solo vía ingresos de mercadería y el motor de envíos.
type CreateProductRequest struct {
	SKU      string           `json:"sku"`
	Name     string           `json:"name"`
	Color    string           `json:"color,omitempty"`
	Price    decimal.Decimal  `json:"price"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Solo identidad y
// precio; stock y costo no se tocan por acá.
type UpdateProductRequest struct {
	Name  string          `json:"name"`
	Color string          `json:"color,omitempty"`
	Price decimal.Decimal `json:"price"`
}

// ReceiptRequest body para POST /api/products/:id/receipts (ingreso en Jujuy).
type ReceiptRequest struct {
	Quantity int              `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// ProductResponse un producto para respuestas HTTP. TotalStock es derivado.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Color        string          `json:"color,omitempty"`
	Price        decimal.Decimal `json:"price"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	StockJujuy   int             `json:"stock_jujuy"`
	StockCordoba int             `json:"stock_cordoba"`
	TotalStock   int             `json:"total_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
