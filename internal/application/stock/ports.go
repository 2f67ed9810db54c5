package stock

import (
	"context"

	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la lectura-modificación-escritura
// de un ajuste y su registro de auditoría se apliquen de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bookRepo repository.BookRepository,
		adjRepo repository.StockAdjustmentRepository,
	) error) error
}
