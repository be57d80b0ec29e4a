package shipping

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
	domainshipping "github.com/jmfarias/traslados-api/internal/domain/shipping"
)

// ComposerUseCase arma la selección de renglones para un paquete: lista los
// elegibles, acota cantidades al tope despachable y calcula el preview del
// prorrateo. Solo lecturas; el estado recién cambia en el commit.
type ComposerUseCase struct {
	itemRepo    repository.OrderItemRepository
	productRepo repository.ProductRepository
}

// NewComposerUseCase construye el caso de uso.
func NewComposerUseCase(itemRepo repository.OrderItemRepository, productRepo repository.ProductRepository) *ComposerUseCase {
	return &ComposerUseCase{itemRepo: itemRepo, productRepo: productRepo}
}

// EligibleItems lista los renglones despachables: orden "recibido", sin
// paquete asignado y con stock de origen disponible.
func (uc *ComposerUseCase) EligibleItems(_ context.Context) ([]dto.EligibleItemResponse, error) {
	eligible, err := uc.itemRepo.ListEligible()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EligibleItemResponse, 0, len(eligible))
	for _, e := range eligible {
		max := e.Item.Quantity
		if e.StockJujuy < max {
			max = e.StockJujuy
		}
		if max <= 0 {
			continue
		}
		name := e.Item.ProductName
		if name == "" {
			name = e.ProductName
		}
		out = append(out, dto.EligibleItemResponse{
			ItemID:          e.Item.ID,
			PurchaseOrderID: e.Item.PurchaseOrderID,
			ProductID:       e.Item.ProductID,
			ProductName:     name,
			Color:           e.Item.Color,
			Quantity:        e.Item.Quantity,
			CostPerUnit:     e.Item.CostPerUnit,
			StockJujuy:      e.StockJujuy,
			MaxShippable:    max,
		})
	}
	return out, nil
}

// resolvedItem es un renglón validado con su cantidad efectiva ya acotada.
type resolvedItem struct {
	candidate   domainshipping.CandidateItem
	productID   string
	productName string
	orderQty    int
}

// resolveSelection valida la selección y acota cada cantidad al rango
// [1, min(cantidad del renglón, stock en Jujuy no reservado por renglones
// anteriores de la selección)]. Cantidad cero pide el máximo despachable.
// Falla con selección vacía, renglones repetidos, inexistentes, ya
// asignados o sin stock de origen.
func (uc *ComposerUseCase) resolveSelection(selection []dto.SelectedItem) ([]resolvedItem, error) {
	if len(selection) == 0 {
		return nil, domain.ErrInvalidInput
	}
	resolved := make([]resolvedItem, 0, len(selection))
	seen := make(map[string]bool, len(selection))
	reserved := make(map[string]int)
	for _, sel := range selection {
		if seen[sel.ItemID] {
			return nil, domain.ErrInvalidInput
		}
		seen[sel.ItemID] = true

		item, err := uc.itemRepo.GetByID(sel.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		if item.Assigned() {
			return nil, domain.ErrItemAssigned
		}
		if item.ProductID == "" {
			// Renglón sin matchear contra el catálogo: no hay stock que mover
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		max := item.Quantity
		if available := product.StockJujuy - reserved[item.ProductID]; available < max {
			max = available
		}
		if max <= 0 {
			return nil, domain.ErrInsufficientStock
		}
		qty := sel.Quantity
		if qty <= 0 || qty > max {
			qty = max
		}
		reserved[item.ProductID] += qty
		name := item.ProductName
		if name == "" {
			name = product.Name
		}
		resolved = append(resolved, resolvedItem{
			candidate: domainshipping.CandidateItem{
				ItemID:         item.ID,
				QuantityToShip: qty,
				CostPerUnit:    item.CostPerUnit,
			},
			productID:   item.ProductID,
			productName: name,
			orderQty:    item.Quantity,
		})
	}
	return resolved, nil
}

// Preview calcula el prorrateo para la selección actual sin tocar nada.
// Se recalcula fresco en cada llamada mientras el operador edita.
func (uc *ComposerUseCase) Preview(_ context.Context, in dto.PreviewRequest) (*dto.PreviewResponse, error) {
	if in.TransportCost == nil || in.TransportCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	resolved, err := uc.resolveSelection(in.Items)
	if err != nil {
		return nil, err
	}

	candidates := make([]domainshipping.CandidateItem, len(resolved))
	for i, r := range resolved {
		candidates[i] = r.candidate
	}
	entries := domainshipping.Distribute(candidates, *in.TransportCost)

	resp := &dto.PreviewResponse{
		TransportCost:  *in.TransportCost,
		TotalItemValue: decimal.Zero,
	}
	for i, e := range entries {
		r := resolved[i]
		resp.TotalItemValue = resp.TotalItemValue.Add(
			decimal.NewFromInt(int64(r.candidate.QuantityToShip)).Mul(r.candidate.CostPerUnit))
		resp.Items = append(resp.Items, dto.DistributionEntryResponse{
			ItemID:             e.ItemID,
			ProductName:        r.productName,
			Quantity:           r.candidate.QuantityToShip,
			CostPerUnit:        r.candidate.CostPerUnit,
			AllocatedTransport: e.AllocatedTransport,
			TransportPerUnit:   e.TransportPerUnit,
			NewUnitCost:        e.NewUnitCost,
		})
	}
	return resp, nil
}
