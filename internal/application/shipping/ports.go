package shipping

import (
	"context"

	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el commit de un paquete y la
// acreditación de una entrega se apliquen completos o no se apliquen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.OrderItemRepository,
		productRepo repository.ProductRepository,
		pkgRepo repository.PackageRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// RemitoGenerator genera el PDF del remito de un paquete.
type RemitoGenerator interface {
	GenerateRemitoPDF(ctx context.Context, pkg *entity.ShippingPackage, items []*entity.OrderLineItem) ([]byte, error)
}
