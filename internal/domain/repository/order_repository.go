package repository

import (
	"context"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia de pedidos.
// Los pedidos nunca se borran: la cancelación es un estado, no una eliminación.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila para serializar cambios de estado concurrentes
	// sobre el mismo pedido.
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	// List devuelve todos los pedidos en orden de inserción (snapshot para el
	// motor de estadísticas y el ranking).
	List(ctx context.Context) ([]*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
	// UpdateStatus reemplaza solo el estado; Items y OrderDate no se tocan.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
