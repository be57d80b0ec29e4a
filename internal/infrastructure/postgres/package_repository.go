package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implementación de PackageRepository sobre PostgreSQL
// (usable con pool o tx).
type PackageRepo struct {
	q Querier
}

// NewPackageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

const packageColumns = `id, name, destination, courier, transport_cost, tracking_number, status, created_at, delivered_at`

func scanPackage(row pgx.Row) (*entity.ShippingPackage, error) {
	var p entity.ShippingPackage
	err := row.Scan(
		&p.ID, &p.Name, &p.Destination, &p.Courier, &p.TransportCost,
		&p.TrackingNumber, &p.Status, &p.CreatedAt, &p.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste el paquete recién armado en "pendiente".
func (r *PackageRepo) Create(pkg *entity.ShippingPackage) error {
	query := `
		INSERT INTO shipping_packages (id, name, destination, courier, transport_cost, tracking_number, status, created_at, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pkg.ID, pkg.Name, pkg.Destination, pkg.Courier, pkg.TransportCost,
		pkg.TrackingNumber, pkg.Status, pkg.CreatedAt, pkg.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipping package: %w", err)
	}
	return nil
}

// GetByID obtiene un paquete por ID.
func (r *PackageRepo) GetByID(id string) (*entity.ShippingPackage, error) {
	p, err := scanPackage(r.q.QueryRow(context.Background(),
		`SELECT `+packageColumns+` FROM shipping_packages WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get shipping package: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el paquete y bloquea la fila (SELECT FOR UPDATE).
func (r *PackageRepo) GetForUpdate(id string) (*entity.ShippingPackage, error) {
	p, err := scanPackage(r.q.QueryRow(context.Background(),
		`SELECT `+packageColumns+` FROM shipping_packages WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get shipping package for update: %w", err)
	}
	return p, nil
}

// UpdateStatus cambia el estado y, en la entrega, fecha el arribo.
func (r *PackageRepo) UpdateStatus(id, status string, deliveredAt *time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE shipping_packages SET status = $2, delivered_at = $3 WHERE id = $1`,
		id, status, deliveredAt,
	)
	if err != nil {
		return fmt.Errorf("update shipping package status: %w", err)
	}
	return nil
}

// List lista paquetes con la cantidad de renglones de cada uno.
func (r *PackageRepo) List(limit, offset int) ([]repository.PackageSummary, error) {
	query := `
		SELECT p.id, p.name, p.destination, p.courier, p.transport_cost,
		       p.tracking_number, p.status, p.created_at, p.delivered_at,
		       count(i.id) AS item_count
		FROM shipping_packages p
		LEFT JOIN order_items i ON i.shipping_package_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipping packages: %w", err)
	}
	defer rows.Close()
	var out []repository.PackageSummary
	for rows.Next() {
		var s repository.PackageSummary
		if err := rows.Scan(
			&s.Package.ID, &s.Package.Name, &s.Package.Destination, &s.Package.Courier,
			&s.Package.TransportCost, &s.Package.TrackingNumber, &s.Package.Status,
			&s.Package.CreatedAt, &s.Package.DeliveredAt, &s.ItemCount,
		); err != nil {
			return nil, fmt.Errorf("scan shipping package: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
