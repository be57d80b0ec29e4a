package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput renglón de una orden de compra nueva. ProductID vacío deja
// el renglón sin matchear, con ProductName como nombre provisorio.
type OrderItemInput struct {
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Color       string          `json:"color,omitempty"`
	Quantity    int             `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Supplier  string           `json:"supplier"`
	OrderedAt *time.Time       `json:"ordered_at,omitempty"`
	Items     []OrderItemInput `json:"items"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse renglón de orden para respuestas HTTP.
type OrderItemResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id,omitempty"`
	ProductName       string          `json:"product_name"`
	Color             string          `json:"color,omitempty"`
	Quantity          int             `json:"quantity"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`
	ShippingPackageID string          `json:"shipping_package_id,omitempty"`
}

// OrderResponse una orden de compra con sus renglones.
type OrderResponse struct {
	ID        string              `json:"id"`
	Supplier  string              `json:"supplier"`
	Status    string              `json:"status"`
	OrderedAt time.Time           `json:"ordered_at"`
	Items     []OrderItemResponse `json:"items,omitempty"`
}
