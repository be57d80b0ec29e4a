package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jmfarias/traslados-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Stock y costo unitario se mutan solo vía el motor de envíos y los
// ingresos de mercadería, nunca desde el Update genérico.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stockJujuy, stockCordoba int) error
	UpdateUnitCost(productID string, cost decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// mutar stock sin carreras entre sesiones concurrentes.
	GetForUpdate(id string) (*entity.Product, error)
}
