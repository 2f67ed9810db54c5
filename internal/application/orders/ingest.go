package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

// Ingest da de alta un pedido enviado por el colaborador de toma de pedidos.
// El pedido nace siempre en pending; las líneas quedan inmutables.
//
// TotalAmount se reconcilia contra Σ cantidad × precio unitario: si no
// coinciden, el pedido se rechaza con error de validación y se deja rastro en
// el log con ambas cifras. Nunca se corrige el total en silencio; después del
// alta el total almacenado es autoritativo y las lecturas no lo recalculan.
func (uc *LifecycleUseCase) Ingest(ctx context.Context, in dto.IngestOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || in.CustomerName == "" {
		return nil, fmt.Errorf("cliente requerido: %w", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("el pedido no tiene líneas: %w", domain.ErrInvalidInput)
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		if it.BookID == "" {
			return nil, fmt.Errorf("línea %d sin book_id: %w", i, domain.ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("línea %d con cantidad %d: %w", i, it.Quantity, domain.ErrInvalidInput)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("línea %d con precio negativo: %w", i, domain.ErrInvalidInput)
		}
		items = append(items, entity.OrderItem{
			BookID:    it.BookID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order := &entity.Order{
		ID:              in.ID,
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		Items:           items,
		TotalAmount:     in.TotalAmount,
		Status:          entity.StatusPending,
		OrderDate:       in.OrderDate,
		PaymentMethod:   in.PaymentMethod,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       time.Now(),
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = order.CreatedAt
	}

	computed := order.ItemsTotal()
	if !order.TotalAmount.Equal(computed) {
		log.Warn().
			Str("order_id", order.ID).
			Str("declared_total", order.TotalAmount.String()).
			Str("computed_total", computed.String()).
			Msg("total del pedido no coincide con sus líneas, pedido rechazado")
		return nil, fmt.Errorf("pedido %s declara %s pero sus líneas suman %s: %w",
			order.ID, order.TotalAmount, computed, domain.ErrTotalMismatch)
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}
