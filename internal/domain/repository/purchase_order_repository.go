package repository

import "github.com/jmfarias/traslados-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
}
