package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

var _ repository.RateRepository = (*RateRepo)(nil)

// RateRepo implementación de RateRepository sobre PostgreSQL.
// (transporte, destino) tiene constraint único.
type RateRepo struct {
	q Querier
}

// NewRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

const rateColumns = `id, courier, destination, base_rate, per_kg_rate, created_at, updated_at`

func scanRate(row pgx.Row) (*entity.ShippingRate, error) {
	var rate entity.ShippingRate
	err := row.Scan(
		&rate.ID, &rate.Courier, &rate.Destination, &rate.BaseRate,
		&rate.PerKgRate, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

// Create persiste una tarifa nueva.
func (r *RateRepo) Create(rate *entity.ShippingRate) error {
	query := `
		INSERT INTO shipping_rates (id, courier, destination, base_rate, per_kg_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Courier, rate.Destination, rate.BaseRate, rate.PerKgRate,
		rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipping rate: %w", err)
	}
	return nil
}

// GetByID obtiene una tarifa por ID.
func (r *RateRepo) GetByID(id string) (*entity.ShippingRate, error) {
	rate, err := scanRate(r.q.QueryRow(context.Background(),
		`SELECT `+rateColumns+` FROM shipping_rates WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get shipping rate: %w", err)
	}
	return rate, nil
}

// Lookup busca la tarifa para (transporte, destino); nil si no hay.
func (r *RateRepo) Lookup(courier, destination string) (*entity.ShippingRate, error) {
	rate, err := scanRate(r.q.QueryRow(context.Background(),
		`SELECT `+rateColumns+` FROM shipping_rates WHERE courier = $1 AND destination = $2`,
		courier, destination))
	if err != nil {
		return nil, fmt.Errorf("lookup shipping rate: %w", err)
	}
	return rate, nil
}

// Update actualiza una tarifa existente.
func (r *RateRepo) Update(rate *entity.ShippingRate) error {
	query := `
		UPDATE shipping_rates SET courier = $2, destination = $3, base_rate = $4, per_kg_rate = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Courier, rate.Destination, rate.BaseRate, rate.PerKgRate, rate.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update shipping rate: %w", err)
	}
	return nil
}

// Delete elimina una tarifa.
func (r *RateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shipping_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipping rate: %w", err)
	}
	return nil
}

// List devuelve todas las tarifas.
func (r *RateRepo) List() ([]*entity.ShippingRate, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+rateColumns+` FROM shipping_rates ORDER BY courier, destination`)
	if err != nil {
		return nil, fmt.Errorf("list shipping rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShippingRate
	for rows.Next() {
		var rate entity.ShippingRate
		if err := rows.Scan(&rate.ID, &rate.Courier, &rate.Destination, &rate.BaseRate,
			&rate.PerKgRate, &rate.CreatedAt, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shipping rate: %w", err)
		}
		list = append(list, &rate)
	}
	return list, rows.Err()
}
