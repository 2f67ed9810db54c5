package repository

import (
	"context"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

// BookRepository define el puerto de persistencia del catálogo.
// Toda mutación de Quantity pasa por el ledger dentro de una transacción.
type BookRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Book, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); serializa
	// los ajustes concurrentes sobre el mismo libro.
	GetForUpdate(ctx context.Context, id string) (*entity.Book, error)
	// List devuelve el catálogo completo en orden de inserción (pasada única,
	// snapshot para el motor de estadísticas).
	List(ctx context.Context) ([]*entity.Book, error)
	Upsert(ctx context.Context, book *entity.Book) error
	// UpdateQuantity reemplaza solo la cantidad (usada por el ledger).
	UpdateQuantity(ctx context.Context, id string, quantity int) error
}
