package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, customer_id, customer_name, items, total_amount, status, order_date, payment_method, shipping_address, created_at`

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas del pedido se guardan como JSONB: son inmutables después del alta
// y siempre se leen como un todo.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID obtiene un pedido por ID. Devuelve nil sin error si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetForUpdate obtiene el pedido y bloquea la fila (SELECT FOR UPDATE) para
// serializar cambios de estado concurrentes. Solo tiene sentido dentro de una tx.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) get(ctx context.Context, query, id string) (*entity.Order, error) {
	var o entity.Order
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.Items, &o.TotalAmount,
		&status, &o.OrderDate, &o.PaymentMethod, &o.ShippingAddress, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get order", err)
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// List devuelve todos los pedidos en orden de inserción (una sola pasada).
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, dbError("list orders", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.Items, &o.TotalAmount,
			&status, &o.OrderDate, &o.PaymentMethod, &o.ShippingAddress, &o.CreatedAt,
		); err != nil {
			return nil, dbError("scan order", err)
		}
		o.Status = entity.OrderStatus(status)
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list orders", err)
	}
	return orders, nil
}

// Create persiste un pedido nuevo (ingesta). Los pedidos nunca se borran.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, customer_name, items, total_amount, status, order_date, payment_method, shipping_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerID, order.CustomerName, order.Items, order.TotalAmount,
		string(order.Status), order.OrderDate, order.PaymentMethod, order.ShippingAddress, order.CreatedAt,
	)
	if err != nil {
		return dbError("insert order", err)
	}
	return nil
}

// UpdateStatus reemplaza solo el estado; items y order_date no se tocan.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return dbError("update order status", err)
	}
	return nil
}
