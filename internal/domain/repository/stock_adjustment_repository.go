package repository

import (
	"context"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

// StockAdjustmentRepository define el puerto del historial de ajustes de
// existencias (auditoría del ledger).
type StockAdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.StockAdjustment) error
	// ListRecent devuelve los ajustes más recientes primero.
	ListRecent(ctx context.Context, limit int) ([]*entity.StockAdjustment, error)
}
