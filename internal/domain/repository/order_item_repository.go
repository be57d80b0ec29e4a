package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jmfarias/traslados-api/internal/domain/entity"
)

// EligibleItem es un renglón elegible para despacho junto con el stock de
// origen de su producto (para que el componedor calcule el tope sin otra
// vuelta a la base).
type EligibleItem struct {
	Item        entity.OrderLineItem
	ProductName string
	StockJujuy  int
}

// OrderItemRepository define el puerto de persistencia para los renglones
// de órdenes de compra.
type OrderItemRepository interface {
	Create(item *entity.OrderLineItem) error
	GetByID(id string) (*entity.OrderLineItem, error)
	// GetForUpdate bloquea el renglón durante el commit de un paquete.
	GetForUpdate(id string) (*entity.OrderLineItem, error)
	UpdateQuantity(itemID string, quantity int) error
	// AssignToPackage linkea el renglón al paquete y guarda su flete prorrateado.
	AssignToPackage(itemID, packageID string, allocatedTransport decimal.Decimal) error
	// ListEligible: orden de compra "recibido", sin paquete asignado y con
	// stock de origen disponible en el producto linkeado.
	ListEligible() ([]EligibleItem, error)
	ListByPackage(packageID string) ([]*entity.OrderLineItem, error)
	ListByOrder(purchaseOrderID string) ([]*entity.OrderLineItem, error)
}
