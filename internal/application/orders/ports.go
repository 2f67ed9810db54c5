package orders

import (
	"context"

	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el
// repositorio de pedidos atado a esa tx. Serializa los cambios de estado
// concurrentes sobre el mismo pedido.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
