package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
	domainshipping "github.com/jmfarias/traslados-api/internal/domain/shipping"
)

// TransferUseCase comete un paquete: crea el registro en "pendiente",
// prorratea el flete, aplica la decisión clonar-o-linkear por renglón,
// descuenta stock de Jujuy y sobreescribe el costo unitario del producto.
// Todo dentro de una transacción con bloqueo de filas, así un paquete a
// medias nunca queda visible y dos sesiones no pisan el mismo stock.
type TransferUseCase struct {
	txRunner TxRunner
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner}
}

// Commit valida el borrador y ejecuta el despacho. Las validaciones de
// formulario (nombre, destino, flete, selección no vacía) cortan antes de
// abrir la transacción: ninguna escritura parcial por un formulario a medias.
func (uc *TransferUseCase) Commit(ctx context.Context, in dto.CommitPackageRequest) (*dto.PackageResponse, error) {
	if in.Name == "" || in.Destination == "" || in.Courier == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TransportCost == nil || in.TransportCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	pkg := &entity.ShippingPackage{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Destination:    in.Destination,
		Courier:        in.Courier,
		TransportCost:  *in.TransportCost,
		TrackingNumber: in.TrackingNumber,
		Status:         entity.PackageStatusPending,
		CreatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.OrderItemRepository,
		productRepo repository.ProductRepository,
		pkgRepo repository.PackageRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Relee y bloquea cada renglón y su producto: la selección pudo
		// quedar vieja entre el preview y el commit. Los productos se
		// bloquean una sola vez y se comparten entre renglones, con el
		// stock ya reservado por renglones anteriores descontado del tope:
		// dos renglones del mismo producto nunca despachan más que el
		// stock real ni se pisan el descuento entre sí.
		type lockedItem struct {
			item     *entity.OrderLineItem
			product  *entity.Product
			shipQty  int
			decision domainshipping.SplitDecision
		}
		locked := make([]lockedItem, 0, len(in.Items))
		seen := make(map[string]bool, len(in.Items))
		products := make(map[string]*entity.Product)
		reserved := make(map[string]int)
		for _, sel := range in.Items {
			if seen[sel.ItemID] {
				return domain.ErrInvalidInput
			}
			seen[sel.ItemID] = true

			item, err := itemRepo.GetForUpdate(sel.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.Assigned() {
				return domain.ErrItemAssigned
			}
			if item.ProductID == "" {
				return domain.ErrInvalidInput
			}
			product, ok := products[item.ProductID]
			if !ok {
				product, err = productRepo.GetForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				products[item.ProductID] = product
			}
			max := item.Quantity
			if available := product.StockJujuy - reserved[item.ProductID]; available < max {
				max = available
			}
			if max <= 0 {
				return domain.ErrInsufficientStock
			}
			qty := sel.Quantity
			if qty <= 0 || qty > max {
				qty = max
			}
			reserved[item.ProductID] += qty
			decision, err := domainshipping.DecideSplit(item.Quantity, qty)
			if err != nil {
				return err
			}
			locked = append(locked, lockedItem{item: item, product: product, shipQty: qty, decision: decision})
		}

		if err := pkgRepo.Create(pkg); err != nil {
			return err
		}

		candidates := make([]domainshipping.CandidateItem, len(locked))
		for i, l := range locked {
			candidates[i] = domainshipping.CandidateItem{
				ItemID:         l.item.ID,
				QuantityToShip: l.shipQty,
				CostPerUnit:    l.item.CostPerUnit,
			}
		}
		entries := domainshipping.Distribute(candidates, pkg.TransportCost)

		for i, l := range locked {
			entry := entries[i]
			switch l.decision.Kind {
			case domainshipping.SplitPartial:
				// El original conserva el remanente sin asignar; el hermano
				// viaja en el paquete con el flete prorrateado.
				if err := itemRepo.UpdateQuantity(l.item.ID, l.decision.Remainder); err != nil {
					return err
				}
				sibling := &entity.OrderLineItem{
					ID:                 uuid.New().String(),
					PurchaseOrderID:    l.item.PurchaseOrderID,
					ProductID:          l.item.ProductID,
					ProductName:        l.item.ProductName,
					Color:              l.item.Color,
					Quantity:           l.decision.Shipped,
					CostPerUnit:        l.item.CostPerUnit,
					AllocatedTransport: entry.AllocatedTransport,
					ShippingPackageID:  pkg.ID,
					CreatedAt:          now,
					UpdatedAt:          now,
				}
				if err := itemRepo.Create(sibling); err != nil {
					return err
				}
			case domainshipping.SplitFull:
				if err := itemRepo.AssignToPackage(l.item.ID, pkg.ID, entry.AllocatedTransport); err != nil {
					return err
				}
			}

			// Descuento de origen: la mercadería viaja, no está vendible en
			// ningún local hasta la entrega. El struct del producto es
			// compartido entre renglones, así cada descuento parte del
			// stock ya descontado por el renglón anterior. Piso en cero.
			l.product.StockJujuy -= l.shipQty
			if l.product.StockJujuy < 0 {
				l.product.StockJujuy = 0
			}
			if err := productRepo.UpdateStock(l.product.ID, l.product.StockJujuy, l.product.StockCordoba); err != nil {
				return err
			}
			// Sobreescritura deliberada: el costo vigente pasa a ser el de
			// reposición con flete incluido. Sin historial de costos.
			if err := productRepo.UpdateUnitCost(l.product.ID, entry.NewUnitCost); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: l.product.ID,
				Type:      entity.MovementTypeEnvio,
				Quantity:  -l.shipQty,
				UnitCost:  entry.NewUnitCost,
				Reference: pkg.ID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toPackageResponse(pkg)
	resp.ItemCount = len(in.Items)
	return resp, nil
}

func toPackageResponse(pkg *entity.ShippingPackage) *dto.PackageResponse {
	return &dto.PackageResponse{
		ID:             pkg.ID,
		Name:           pkg.Name,
		Destination:    pkg.Destination,
		Courier:        pkg.Courier,
		TransportCost:  pkg.TransportCost,
		TrackingNumber: pkg.TrackingNumber,
		Status:         pkg.Status,
		CreatedAt:      pkg.CreatedAt,
		DeliveredAt:    pkg.DeliveredAt,
	}
}

func toPackageItemResponse(item *entity.OrderLineItem) dto.PackageItemResponse {
	return dto.PackageItemResponse{
		ItemID:             item.ID,
		ProductID:          item.ProductID,
		ProductName:        item.ProductName,
		Color:              item.Color,
		Quantity:           item.Quantity,
		CostPerUnit:        item.CostPerUnit,
		AllocatedTransport: item.AllocatedTransport,
	}
}
