package repository

import "github.com/jmfarias/traslados-api/internal/domain/entity"

// StockMovementRepository define el puerto para el diario de movimientos de stock.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
