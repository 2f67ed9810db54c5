// Package stock implementa el ledger de existencias: toda mutación de la
// cantidad de un libro pasa por aquí, dentro de una transacción con bloqueo de
// fila (SELECT FOR UPDATE) y con registro de auditoría.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

// LedgerUseCase aplica comandos SET/ADD/SUBTRACT sobre las existencias.
type LedgerUseCase struct {
	txRunner TxRunner
	adjRepo  repository.StockAdjustmentRepository // lecturas del historial, fuera de tx
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, adjRepo repository.StockAdjustmentRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, adjRepo: adjRepo}
}

// AdjustInput entrada de un ajuste de existencias.
type AdjustInput struct {
	BookID    string
	Operation string // SET | ADD | SUBTRACT
	Amount    int    // entero no negativo
	Reason    string
}

// AdjustResult resultado de un ajuste aplicado.
type AdjustResult struct {
	Book             *entity.Book
	PreviousQuantity int
	NewQuantity      int
}

// Adjust aplica un ajuste de existencias de forma atómica.
//
//   - SET: cantidad = Amount.
//   - ADD: cantidad = actual + Amount.
//   - SUBTRACT: cantidad = max(0, actual - Amount); el clamp es deliberado,
//     una sobre-resta nunca falla ni deja cantidades negativas. La auditoría
//     conserva la cantidad solicitada para conciliar inventario perdido.
//
// La validación ocurre antes de tocar el almacenamiento. Dos ajustes
// concurrentes sobre el mismo libro se serializan por el bloqueo de fila.
func (uc *LedgerUseCase) Adjust(ctx context.Context, in AdjustInput) (*AdjustResult, error) {
	if in.BookID == "" {
		return nil, fmt.Errorf("book_id requerido: %w", domain.ErrInvalidInput)
	}
	if !entity.ValidOperation(in.Operation) {
		return nil, fmt.Errorf("operación %q desconocida: %w", in.Operation, domain.ErrInvalidInput)
	}
	if in.Amount < 0 {
		return nil, fmt.Errorf("la cantidad debe ser un entero no negativo: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	txID := uuid.New().String()

	var res *AdjustResult
	err := uc.txRunner.Run(ctx, func(
		bookRepo repository.BookRepository,
		adjRepo repository.StockAdjustmentRepository,
	) error {
		// Bloquea la fila del libro para evitar condiciones de carrera
		book, err := bookRepo.GetForUpdate(ctx, in.BookID)
		if err != nil {
			return err
		}
		if book == nil {
			return fmt.Errorf("libro %s: %w", in.BookID, domain.ErrNotFound)
		}

		prev := book.Quantity
		var newQty int
		switch in.Operation {
		case entity.OpSet:
			newQty = in.Amount
		case entity.OpAdd:
			newQty = prev + in.Amount
		case entity.OpSubtract:
			newQty = prev - in.Amount
			if newQty < 0 {
				newQty = 0
			}
		}

		if err := bookRepo.UpdateQuantity(ctx, book.ID, newQty); err != nil {
			return err
		}
		adj := &entity.StockAdjustment{
			ID:                uuid.New().String(),
			TransactionID:     txID,
			BookID:            book.ID,
			Operation:         in.Operation,
			RequestedAmount:   in.Amount,
			PreviousQuantity:  prev,
			ResultingQuantity: newQty,
			Reason:            in.Reason,
			CreatedAt:         now,
		}
		if err := adjRepo.Create(ctx, adj); err != nil {
			return err
		}

		book.Quantity = newQty
		book.UpdatedAt = now
		res = &AdjustResult{Book: book, PreviousQuantity: prev, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// QuickAdjust conveniencia para el botón +/- del panel: delta positivo es ADD,
// negativo es SUBTRACT con el mismo clamp en 0.
func (uc *LedgerUseCase) QuickAdjust(ctx context.Context, bookID string, delta int) (*AdjustResult, error) {
	op := entity.OpAdd
	amount := delta
	if delta < 0 {
		op = entity.OpSubtract
		amount = -delta
	}
	return uc.Adjust(ctx, AdjustInput{BookID: bookID, Operation: op, Amount: amount})
}

// ListAdjustments devuelve el historial de auditoría, el más reciente primero.
func (uc *LedgerUseCase) ListAdjustments(ctx context.Context, limit int) ([]dto.StockAdjustmentDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	list, err := uc.adjRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAdjustmentDTO, 0, len(list))
	for _, a := range list {
		out = append(out, dto.StockAdjustmentDTO{
			ID:                a.ID,
			TransactionID:     a.TransactionID,
			BookID:            a.BookID,
			Operation:         a.Operation,
			RequestedAmount:   a.RequestedAmount,
			PreviousQuantity:  a.PreviousQuantity,
			ResultingQuantity: a.ResultingQuantity,
			Reason:            a.Reason,
			CreatedAt:         a.CreatedAt,
		})
	}
	return out, nil
}
