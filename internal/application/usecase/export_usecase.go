package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

// ExportUseCase produce los registros planos que consume el colaborador de
// exportación/reportes. El esquema es un contrato: campos y orden estables
// para que el diffing aguas abajo no se rompa.
type ExportUseCase struct {
	bookRepo  repository.BookRepository
	orderRepo repository.OrderRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(bookRepo repository.BookRepository, orderRepo repository.OrderRepository) *ExportUseCase {
	return &ExportUseCase{bookRepo: bookRepo, orderRepo: orderRepo}
}

// Books exporta el catálogo completo en orden de inserción.
func (uc *ExportUseCase) Books(ctx context.Context) ([]dto.BookExportDTO, error) {
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookExportDTO, 0, len(books))
	for _, b := range books {
		out = append(out, dto.BookExportDTO{
			ID:       b.ID,
			Title:    b.Title,
			Author:   b.Author,
			Category: b.Category,
			Price:    b.Price,
			Quantity: b.Quantity,
		})
	}
	return out, nil
}

// Orders exporta todos los pedidos en orden de inserción, con la fecha en
// ISO 8601 (RFC 3339, UTC).
func (uc *ExportUseCase) Orders(ctx context.Context) ([]dto.OrderExportDTO, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderExportDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderExportDTO{
			ID:            o.ID,
			CustomerName:  o.CustomerName,
			CustomerID:    o.CustomerID,
			TotalAmount:   o.TotalAmount,
			Status:        string(o.Status),
			OrderDate:     o.OrderDate.UTC().Format(time.RFC3339),
			ItemCount:     o.ItemCount(),
			PaymentMethod: o.PaymentMethod,
		})
	}
	return out, nil
}
