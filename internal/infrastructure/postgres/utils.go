package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/libreria-api/internal/domain"
)

// dbError traduce fallas de PostgreSQL a la taxonomía de errores del dominio.
//   - 23505 (unique_violation)            → ErrDuplicate
//   - 40001 / 40P01 (serialización, deadlock) → ErrConflict: reintentar el comando completo
//   - timeout / cancelación / resto       → ErrPersistence: la entidad queda sin cambios
func dbError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
		case "40001", "40P01":
			return fmt.Errorf("%s: %w", op, domain.ErrConflict)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: tiempo de espera agotado: %w", op, domain.ErrPersistence)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}
