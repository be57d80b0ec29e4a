package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo implementación de OrderItemRepository sobre PostgreSQL
// (usable con pool o tx). product_id y shipping_package_id son nullable;
// en la entidad el vacío los representa.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

const itemColumns = `id, purchase_order_id, product_id, product_name, color, quantity, cost_per_unit, allocated_transport, shipping_package_id, created_at, updated_at`

func scanItem(row pgx.Row) (*entity.OrderLineItem, error) {
	var it entity.OrderLineItem
	var productID, packageID *string
	var allocated *decimal.Decimal
	err := row.Scan(
		&it.ID, &it.PurchaseOrderID, &productID, &it.ProductName, &it.Color,
		&it.Quantity, &it.CostPerUnit, &allocated, &packageID,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if productID != nil {
		it.ProductID = *productID
	}
	if packageID != nil {
		it.ShippingPackageID = *packageID
	}
	if allocated != nil {
		it.AllocatedTransport = *allocated
	}
	return &it, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste un renglón nuevo (alta de orden o hermano de un split).
func (r *OrderItemRepo) Create(item *entity.OrderLineItem) error {
	var allocated *decimal.Decimal
	if item.ShippingPackageID != "" {
		allocated = &item.AllocatedTransport
	}
	query := `
		INSERT INTO order_items (id, purchase_order_id, product_id, product_name, color, quantity, cost_per_unit, allocated_transport, shipping_package_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseOrderID, nullable(item.ProductID), item.ProductName,
		item.Color, item.Quantity, item.CostPerUnit, allocated,
		nullable(item.ShippingPackageID), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un renglón por ID.
func (r *OrderItemRepo) GetByID(id string) (*entity.OrderLineItem, error) {
	it, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM order_items WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return it, nil
}

// GetForUpdate obtiene el renglón y bloquea la fila (SELECT FOR UPDATE).
func (r *OrderItemRepo) GetForUpdate(id string) (*entity.OrderLineItem, error) {
	it, err := scanItem(r.q.QueryRow(context.Background(),
		`SELECT `+itemColumns+` FROM order_items WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get order item for update: %w", err)
	}
	return it, nil
}

// UpdateQuantity fija la cantidad sin despachar del renglón (split parcial).
func (r *OrderItemRepo) UpdateQuantity(itemID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE order_items SET quantity = $2, updated_at = now() WHERE id = $1`,
		itemID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update order item quantity: %w", err)
	}
	return nil
}

// AssignToPackage linkea el renglón al paquete y guarda su flete prorrateado.
func (r *OrderItemRepo) AssignToPackage(itemID, packageID string, allocatedTransport decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE order_items SET shipping_package_id = $2, allocated_transport = $3, updated_at = now() WHERE id = $1`,
		itemID, packageID, allocatedTransport,
	)
	if err != nil {
		return fmt.Errorf("assign order item to package: %w", err)
	}
	return nil
}

// ListEligible lista renglones despachables: orden "recibido", sin paquete
// asignado y con stock de origen en el producto linkeado.
func (r *OrderItemRepo) ListEligible() ([]repository.EligibleItem, error) {
	query := `
		SELECT i.id, i.purchase_order_id, i.product_id, i.product_name, i.color,
		       i.quantity, i.cost_per_unit, i.created_at, i.updated_at,
		       p.name, p.stock_jujuy
		FROM order_items i
		JOIN purchase_orders o ON o.id = i.purchase_order_id
		JOIN products p ON p.id = i.product_id
		WHERE o.status = $1
		  AND i.shipping_package_id IS NULL
		  AND p.stock_jujuy > 0
		ORDER BY i.created_at`
	rows, err := r.q.Query(context.Background(), query, entity.OrderStatusReceived)
	if err != nil {
		return nil, fmt.Errorf("list eligible items: %w", err)
	}
	defer rows.Close()
	var out []repository.EligibleItem
	for rows.Next() {
		var e repository.EligibleItem
		var productID *string
		if err := rows.Scan(
			&e.Item.ID, &e.Item.PurchaseOrderID, &productID, &e.Item.ProductName,
			&e.Item.Color, &e.Item.Quantity, &e.Item.CostPerUnit,
			&e.Item.CreatedAt, &e.Item.UpdatedAt,
			&e.ProductName, &e.StockJujuy,
		); err != nil {
			return nil, fmt.Errorf("scan eligible item: %w", err)
		}
		if productID != nil {
			e.Item.ProductID = *productID
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListByPackage lista los renglones linkeados a un paquete.
func (r *OrderItemRepo) ListByPackage(packageID string) ([]*entity.OrderLineItem, error) {
	return r.list(`SELECT `+itemColumns+` FROM order_items WHERE shipping_package_id = $1 ORDER BY created_at`, packageID)
}

// ListByOrder lista los renglones de una orden de compra.
func (r *OrderItemRepo) ListByOrder(purchaseOrderID string) ([]*entity.OrderLineItem, error) {
	return r.list(`SELECT `+itemColumns+` FROM order_items WHERE purchase_order_id = $1 ORDER BY created_at`, purchaseOrderID)
}

func (r *OrderItemRepo) list(query string, arg any) ([]*entity.OrderLineItem, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var out []*entity.OrderLineItem
	for rows.Next() {
		var it entity.OrderLineItem
		var productID, packageID *string
		var allocated *decimal.Decimal
		if err := rows.Scan(
			&it.ID, &it.PurchaseOrderID, &productID, &it.ProductName, &it.Color,
			&it.Quantity, &it.CostPerUnit, &allocated, &packageID,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if productID != nil {
			it.ProductID = *productID
		}
		if packageID != nil {
			it.ShippingPackageID = *packageID
		}
		if allocated != nil {
			it.AllocatedTransport = *allocated
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
