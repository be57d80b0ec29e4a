package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de error de PostgreSQL para violación de constraint único.
const pgUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un índice único (SKU de
// producto, par transporte-destino de una tarifa).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
