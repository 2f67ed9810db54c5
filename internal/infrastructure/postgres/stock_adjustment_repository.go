package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

// StockAdjustmentRepo implementación del historial de ajustes sobre PostgreSQL
// (usable con pool o tx).
type StockAdjustmentRepo struct {
	q Querier
}

// NewStockAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAdjustmentRepository(q Querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{q: q}
}

// Create persiste un registro de auditoría del ledger.
func (r *StockAdjustmentRepo) Create(ctx context.Context, adj *entity.StockAdjustment) error {
	if adj.ID == "" {
		adj.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_adjustments (id, transaction_id, book_id, operation, requested_amount, previous_quantity, resulting_quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)`
	_, err := r.q.Exec(ctx, query,
		adj.ID, adj.TransactionID, adj.BookID, adj.Operation,
		adj.RequestedAmount, adj.PreviousQuantity, adj.ResultingQuantity,
		adj.Reason, adj.CreatedAt,
	)
	if err != nil {
		return dbError("insert stock adjustment", err)
	}
	return nil
}

// ListRecent devuelve los ajustes más recientes primero.
func (r *StockAdjustmentRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT id, transaction_id, book_id, operation, requested_amount, previous_quantity, resulting_quantity, COALESCE(reason, ''), created_at
		FROM stock_adjustments ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, dbError("list stock adjustments", err)
	}
	defer rows.Close()

	var list []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(
			&a.ID, &a.TransactionID, &a.BookID, &a.Operation,
			&a.RequestedAmount, &a.PreviousQuantity, &a.ResultingQuantity,
			&a.Reason, &a.CreatedAt,
		); err != nil {
			return nil, dbError("scan stock adjustment", err)
		}
		list = append(list, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list stock adjustments", err)
	}
	return list, nil
}
