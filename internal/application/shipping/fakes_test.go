package shipping_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

// fakeStore guarda todo en mapas para probar los casos de uso sin base de
// datos. No simula transacciones: los tests afirman estados finales, no
// rollbacks.
type fakeStore struct {
	orders   map[string]*entity.PurchaseOrder
	items    map[string]*entity.OrderLineItem
	products map[string]*entity.Product
	packages map[string]*entity.ShippingPackage
	movs     []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:   map[string]*entity.PurchaseOrder{},
		items:    map[string]*entity.OrderLineItem{},
		products: map[string]*entity.Product{},
		packages: map[string]*entity.ShippingPackage{},
	}
}

func (s *fakeStore) addProduct(id string, stockJujuy, stockCordoba int, unitCost decimal.Decimal) {
	s.products[id] = &entity.Product{
		ID: id, SKU: "SKU-" + id, Name: "producto " + id,
		UnitCost: unitCost, StockJujuy: stockJujuy, StockCordoba: stockCordoba,
	}
}

func (s *fakeStore) addReceivedOrder(id string) {
	s.orders[id] = &entity.PurchaseOrder{ID: id, Supplier: "proveedor", Status: entity.OrderStatusReceived}
}

func (s *fakeStore) addItem(id, orderID, productID string, qty int, costPerUnit decimal.Decimal) {
	s.items[id] = &entity.OrderLineItem{
		ID: id, PurchaseOrderID: orderID, ProductID: productID,
		ProductName: "producto " + productID, Quantity: qty, CostPerUnit: costPerUnit,
	}
}

// ── OrderItemRepository ───────────────────────────────────────────────────────

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *entity.OrderLineItem) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.OrderLineItem, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.OrderLineItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) UpdateQuantity(itemID string, quantity int) error {
	r.s.items[itemID].Quantity = quantity
	return nil
}

func (r *fakeItemRepo) AssignToPackage(itemID, packageID string, allocated decimal.Decimal) error {
	r.s.items[itemID].ShippingPackageID = packageID
	r.s.items[itemID].AllocatedTransport = allocated
	return nil
}

func (r *fakeItemRepo) ListEligible() ([]repository.EligibleItem, error) {
	var out []repository.EligibleItem
	for _, item := range r.s.items {
		order := r.s.orders[item.PurchaseOrderID]
		if order == nil || order.Status != entity.OrderStatusReceived || item.Assigned() {
			continue
		}
		product := r.s.products[item.ProductID]
		if product == nil || product.StockJujuy <= 0 {
			continue
		}
		out = append(out, repository.EligibleItem{
			Item: *item, ProductName: product.Name, StockJujuy: product.StockJujuy,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out, nil
}

func (r *fakeItemRepo) ListByPackage(packageID string) ([]*entity.OrderLineItem, error) {
	var out []*entity.OrderLineItem
	for _, item := range r.s.items {
		if item.ShippingPackageID == packageID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeItemRepo) ListByOrder(orderID string) ([]*entity.OrderLineItem, error) {
	var out []*entity.OrderLineItem
	for _, item := range r.s.items {
		if item.PurchaseOrderID == orderID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stockJujuy, stockCordoba int) error {
	p := r.s.products[productID]
	p.StockJujuy = stockJujuy
	p.StockCordoba = stockCordoba
	return nil
}

func (r *fakeProductRepo) UpdateUnitCost(productID string, cost decimal.Decimal) error {
	r.s.products[productID].UnitCost = cost
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ── PackageRepository ─────────────────────────────────────────────────────────

type fakePackageRepo struct{ s *fakeStore }

func (r *fakePackageRepo) Create(pkg *entity.ShippingPackage) error {
	cp := *pkg
	r.s.packages[pkg.ID] = &cp
	return nil
}

func (r *fakePackageRepo) GetByID(id string) (*entity.ShippingPackage, error) {
	pkg, ok := r.s.packages[id]
	if !ok {
		return nil, nil
	}
	cp := *pkg
	return &cp, nil
}

func (r *fakePackageRepo) GetForUpdate(id string) (*entity.ShippingPackage, error) {
	return r.GetByID(id)
}

func (r *fakePackageRepo) UpdateStatus(id, status string, deliveredAt *time.Time) error {
	pkg := r.s.packages[id]
	pkg.Status = status
	pkg.DeliveredAt = deliveredAt
	return nil
}

func (r *fakePackageRepo) List(limit, offset int) ([]repository.PackageSummary, error) {
	var out []repository.PackageSummary
	for _, pkg := range r.s.packages {
		count := 0
		for _, item := range r.s.items {
			if item.ShippingPackageID == pkg.ID {
				count++
			}
		}
		out = append(out, repository.PackageSummary{Package: *pkg, ItemCount: count})
	}
	return out, nil
}

// ── StockMovementRepository ───────────────────────────────────────────────────

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	cp := *mov
	r.s.movs = append(r.s.movs, &cp)
	return nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.s.movs, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movs {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	pkgRepo repository.PackageRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(&fakeItemRepo{t.s}, &fakeProductRepo{t.s}, &fakePackageRepo{t.s}, &fakeMovementRepo{t.s})
}
