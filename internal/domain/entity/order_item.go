package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineItem es un renglón de compra: una cantidad de un producto a un
// costo unitario dado. ProductID puede ser vacío si el artículo todavía no
// se matcheó contra el catálogo (queda con el nombre provisorio).
//
// Quantity representa unidades SIN despachar: en un despacho parcial el
// renglón original se decrementa y se crea un hermano con la cantidad
// despachada, linkeado al paquete. La suma de cantidades entre un renglón
// y sus hermanos nunca cambia.
type OrderLineItem struct {
	ID                 string
	PurchaseOrderID    string
	ProductID          string // vacío = sin matchear contra el catálogo
	ProductName        string // nombre provisorio o copia del nombre del producto
	Color              string
	Quantity           int
	CostPerUnit        decimal.Decimal
	AllocatedTransport decimal.Decimal // flete prorrateado, solo para renglones linkeados
	ShippingPackageID  string          // vacío = sin asignar a paquete
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Assigned indica si el renglón ya pertenece a un paquete.
func (i *OrderLineItem) Assigned() bool {
	return i.ShippingPackageID != ""
}
