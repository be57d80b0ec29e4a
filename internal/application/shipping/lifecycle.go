package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

// LifecycleUseCase maneja el ciclo de vida de los paquetes. La transición a
// "entregado" acredita el stock en Córdoba por cada renglón linkeado, dentro
// de una transacción con la fila del paquete bloqueada: confirmar dos veces
// la misma entrega devuelve conflicto y no acredita de nuevo.
type LifecycleUseCase struct {
	txRunner TxRunner
	pkgRepo  repository.PackageRepository
	itemRepo repository.OrderItemRepository
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(txRunner TxRunner, pkgRepo repository.PackageRepository, itemRepo repository.OrderItemRepository) *LifecycleUseCase {
	return &LifecycleUseCase{txRunner: txRunner, pkgRepo: pkgRepo, itemRepo: itemRepo}
}

// UpdateStatus aplica una transición de la máquina lineal
// pendiente → en_camino → entregado. Sin saltos hacia atrás; "entregado"
// es terminal, re-confirmarla devuelve ErrInvalidTransition.
func (uc *LifecycleUseCase) UpdateStatus(ctx context.Context, packageID, target string) (*dto.PackageResponse, error) {
	switch target {
	case entity.PackageStatusInTransit, entity.PackageStatusDelivered:
	default:
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.ShippingPackage
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.OrderItemRepository,
		productRepo repository.ProductRepository,
		pkgRepo repository.PackageRepository,
		movRepo repository.StockMovementRepository,
	) error {
		pkg, err := pkgRepo.GetForUpdate(packageID)
		if err != nil {
			return err
		}
		if pkg == nil {
			return domain.ErrNotFound
		}
		if !pkg.CanTransition(target) {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		var deliveredAt *time.Time
		if target == entity.PackageStatusDelivered {
			deliveredAt = &now
			if err := creditDelivery(itemRepo, productRepo, movRepo, pkg.ID, now); err != nil {
				return err
			}
		}
		if err := pkgRepo.UpdateStatus(pkg.ID, target, deliveredAt); err != nil {
			return err
		}
		pkg.Status = target
		pkg.DeliveredAt = deliveredAt
		updated = pkg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPackageResponse(updated), nil
}

// creditDelivery acredita en Córdoba la cantidad de cada renglón del paquete
// y asienta la recepción en el diario de movimientos.
func creditDelivery(
	itemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	packageID string,
	now time.Time,
) error {
	items, err := itemRepo.ListByPackage(packageID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ProductID == "" {
			continue
		}
		product, err := productRepo.GetForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateStock(product.ID, product.StockJujuy, product.StockCordoba+item.Quantity); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeRecepcion,
			Quantity:  item.Quantity,
			UnitCost:  product.UnitCost,
			Reference: packageID,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
	}
	return nil
}

// List devuelve los paquetes con su cantidad de renglones.
func (uc *LifecycleUseCase) List(_ context.Context, limit, offset int) ([]dto.PackageResponse, error) {
	summaries, err := uc.pkgRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PackageResponse, 0, len(summaries))
	for _, s := range summaries {
		resp := toPackageResponse(&s.Package)
		resp.ItemCount = s.ItemCount
		out = append(out, *resp)
	}
	return out, nil
}

// GetByID devuelve un paquete con sus renglones.
func (uc *LifecycleUseCase) GetByID(_ context.Context, id string) (*dto.PackageDetailResponse, error) {
	pkg, err := uc.pkgRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByPackage(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.PackageDetailResponse{PackageResponse: *toPackageResponse(pkg)}
	detail.ItemCount = len(items)
	for _, item := range items {
		detail.Items = append(detail.Items, toPackageItemResponse(item))
	}
	return detail, nil
}
