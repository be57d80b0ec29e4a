package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes de compra y sus renglones.
// El motor de envíos solo consume renglones de órdenes en "recibido".
type OrderUseCase struct {
	orderRepo   repository.PurchaseOrderRepository
	itemRepo    repository.OrderItemRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, itemRepo: itemRepo, productRepo: productRepo}
}

// Create registra una orden de compra con sus renglones en "pendiente".
// Cada renglón necesita un producto del catálogo o un nombre provisorio.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.CostPerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if item.ProductID == "" && item.ProductName == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	orderedAt := now
	if in.OrderedAt != nil {
		orderedAt = *in.OrderedAt
	}
	order := &entity.PurchaseOrder{
		ID:        uuid.New().String(),
		Supplier:  in.Supplier,
		Status:    entity.OrderStatusPending,
		OrderedAt: orderedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	resp := &dto.OrderResponse{
		ID:        order.ID,
		Supplier:  order.Supplier,
		Status:    order.Status,
		OrderedAt: order.OrderedAt,
	}
	for _, input := range in.Items {
		name := input.ProductName
		if input.ProductID != "" {
			product, err := uc.productRepo.GetByID(input.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
			if name == "" {
				name = product.Name
			}
		}
		item := &entity.OrderLineItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: order.ID,
			ProductID:       input.ProductID,
			ProductName:     name,
			Color:           input.Color,
			Quantity:        input.Quantity,
			CostPerUnit:     input.CostPerUnit,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := uc.itemRepo.Create(item); err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, toOrderItemResponse(item))
	}
	return resp, nil
}

// UpdateStatus cambia el estado de la orden (pendiente ↔ recibido).
func (uc *OrderUseCase) UpdateStatus(id, status string) error {
	if status != entity.OrderStatusPending && status != entity.OrderStatusReceived {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(id, status)
}

// GetByID devuelve una orden con sus renglones.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	resp := &dto.OrderResponse{
		ID:        order.ID,
		Supplier:  order.Supplier,
		Status:    order.Status,
		OrderedAt: order.OrderedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toOrderItemResponse(item))
	}
	return resp, nil
}

// List lista órdenes con paginación, sin renglones.
func (uc *OrderUseCase) List(limit, offset int) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderResponse{
			ID:        o.ID,
			Supplier:  o.Supplier,
			Status:    o.Status,
			OrderedAt: o.OrderedAt,
		})
	}
	return out, nil
}

func toOrderItemResponse(item *entity.OrderLineItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:                item.ID,
		ProductID:         item.ProductID,
		ProductName:       item.ProductName,
		Color:             item.Color,
		Quantity:          item.Quantity,
		CostPerUnit:       item.CostPerUnit,
		ShippingPackageID: item.ShippingPackageID,
	}
}
