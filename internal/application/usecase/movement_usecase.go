package usecase

import (
	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

// MovementUseCase lecturas del diario de movimientos de stock.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve los movimientos, opcionalmente filtrados por producto.
func (uc *MovementUseCase) List(productID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	var movs []*entity.StockMovement
	var err error
	if productID != "" {
		movs, err = uc.repo.ListByProduct(productID, limit, offset)
	} else {
		movs, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.StockMovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			UnitCost:  m.UnitCost,
			Reference: m.Reference,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
