package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EligibleItemResponse renglón elegible para armar un paquete.
// MaxShippable = min(cantidad del renglón, stock en Jujuy del producto).
type EligibleItemResponse struct {
	ItemID          string          `json:"item_id"`
	PurchaseOrderID string          `json:"purchase_order_id"`
	ProductID       string          `json:"product_id,omitempty"`
	ProductName     string          `json:"product_name"`
	Color           string          `json:"color,omitempty"`
	Quantity        int             `json:"quantity"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	StockJujuy      int             `json:"stock_jujuy"`
	MaxShippable    int             `json:"max_shippable"`
}

// SelectedItem renglón elegido con su cantidad a despachar.
// Quantity 0 = usar el máximo despachable.
type SelectedItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// PreviewRequest body para POST /api/shipping/preview.
type PreviewRequest struct {
	Items         []SelectedItem   `json:"items"`
	TransportCost *decimal.Decimal `json:"transport_cost"`
}

// DistributionEntryResponse prorrateo calculado para un renglón.
type DistributionEntryResponse struct {
	ItemID             string          `json:"item_id"`
	ProductName        string          `json:"product_name"`
	Quantity           int             `json:"quantity"`
	CostPerUnit        decimal.Decimal `json:"cost_per_unit"`
	AllocatedTransport decimal.Decimal `json:"allocated_transport"`
	TransportPerUnit   decimal.Decimal `json:"transport_per_unit"`
	NewUnitCost        decimal.Decimal `json:"new_unit_cost"`
}

// PreviewResponse resultado del preview, recalculado en cada llamada.
type PreviewResponse struct {
	Items          []DistributionEntryResponse `json:"items"`
	TransportCost  decimal.Decimal             `json:"transport_cost"`
	TotalItemValue decimal.Decimal             `json:"total_item_value"`
}

// CommitPackageRequest body para POST /api/shipping/packages.
type CommitPackageRequest struct {
	Name           string           `json:"name"`
	Destination    string           `json:"destination"`
	Courier        string           `json:"courier"`
	TransportCost  *decimal.Decimal `json:"transport_cost"`
	TrackingNumber string           `json:"tracking_number,omitempty"`
	Items          []SelectedItem   `json:"items"`
}

// PackageResponse un paquete para respuestas HTTP.
type PackageResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Destination    string          `json:"destination"`
	Courier        string          `json:"courier"`
	TransportCost  decimal.Decimal `json:"transport_cost"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	Status         string          `json:"status"`
	ItemCount      int             `json:"item_count,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	DeliveredAt    *time.Time      `json:"delivered_at,omitempty"`
}

// PackageItemResponse renglón linkeado a un paquete.
type PackageItemResponse struct {
	ItemID             string          `json:"item_id"`
	ProductID          string          `json:"product_id,omitempty"`
	ProductName        string          `json:"product_name"`
	Color              string          `json:"color,omitempty"`
	Quantity           int             `json:"quantity"`
	CostPerUnit        decimal.Decimal `json:"cost_per_unit"`
	AllocatedTransport decimal.Decimal `json:"allocated_transport"`
}

// PackageDetailResponse paquete con sus renglones.
type PackageDetailResponse struct {
	PackageResponse
	Items []PackageItemResponse `json:"items"`
}

// UpdatePackageStatusRequest body para PATCH /api/packages/:id/status.
type UpdatePackageStatusRequest struct {
	Status string `json:"status"`
}

// StockMovementResponse asiento del diario de stock.
type StockMovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
