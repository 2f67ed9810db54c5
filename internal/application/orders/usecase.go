// Package orders implementa el ciclo de vida de pedidos: la máquina de estados
// de Status y la ingesta desde el colaborador de toma de pedidos. Las líneas
// del pedido y su fecha son inmutables después del alta; la cancelación es un
// estado, nunca un borrado.
package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
	"github.com/jhoicas/libreria-api/internal/domain/stats"
)

// LifecycleUseCase comandos y consultas sobre pedidos.
type LifecycleUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository // lecturas e ingesta, fuera de tx
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(txRunner TxRunner, orderRepo repository.OrderRepository) *LifecycleUseCase {
	return &LifecycleUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// SetStatus aplica una transición de estado validada por la tabla explícita.
// La versión anterior del panel permitía elegir cualquier estado desde un
// dropdown; aquí una transición fuera de la tabla se rechaza, y los estados
// terminales (delivered, cancelled) son inmutables. La entrega no toca
// existencias: el descuento ocurre al colocar el pedido, fuera de este núcleo.
func (uc *LifecycleUseCase) SetStatus(ctx context.Context, orderID string, target entity.OrderStatus) (*entity.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order_id requerido: %w", domain.ErrInvalidInput)
	}
	if !target.Valid() {
		return nil, fmt.Errorf("estado %q desconocido: %w", target, domain.ErrInvalidInput)
	}

	var updated *entity.Order
	err := uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		// Bloquea la fila del pedido; dos setStatus concurrentes se serializan
		order, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("pedido %s: %w", orderID, domain.ErrNotFound)
		}
		if order.Status.Terminal() {
			return fmt.Errorf("pedido %s ya está en estado terminal %s: %w",
				orderID, order.Status, domain.ErrInvalidTransition)
		}
		if !order.Status.CanTransitionTo(target) {
			return fmt.Errorf("pedido %s no puede pasar de %s a %s: %w",
				orderID, order.Status, target, domain.ErrInvalidTransition)
		}
		if err := orderRepo.UpdateStatus(ctx, orderID, target); err != nil {
			return err
		}
		order.Status = target
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetByID obtiene un pedido por ID.
func (uc *LifecycleUseCase) GetByID(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("pedido %s: %w", orderID, domain.ErrNotFound)
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// ListRanked devuelve todos los pedidos ordenados para pantalla: pendientes
// primero (rango de prioridad ascendente), dentro del rango fecha descendente.
func (uc *LifecycleUseCase) ListRanked(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ranked := stats.RankOrders(orders)
	items := make([]dto.OrderResponse, 0, len(ranked))
	for _, o := range ranked {
		items = append(items, ToOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// ToOrderResponse mapea la entidad al DTO HTTP.
func ToOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{
			BookID:    it.BookID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		PriorityRank:    o.Status.PriorityRank(),
		OrderDate:       o.OrderDate,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
	}
}
