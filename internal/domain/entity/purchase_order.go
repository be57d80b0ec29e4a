package entity

import "time"

// Estados de una orden de compra.
const (
	OrderStatusPending  = "pendiente"
	OrderStatusReceived = "recibido"
)

// PurchaseOrder agrupa artículos comprados a un proveedor. Sus renglones
// (OrderLineItem) quedan disponibles para armar paquetes recién cuando la
// orden pasa a "recibido".
type PurchaseOrder struct {
	ID        string
	Supplier  string
	Status    string
	OrderedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
