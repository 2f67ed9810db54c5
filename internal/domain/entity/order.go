package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de un pedido.
type OrderStatus string

// Estados del pedido. Camino hacia adelante: pending → processing → shipped → delivered.
// cancelled es alcanzable desde cualquier estado no terminal.
const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// transitions tabla explícita de transiciones permitidas por estado actual.
// delivered y cancelled son terminales: no aparecen como origen.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
}

// Valid indica si el estado pertenece al conjunto definido.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo consulta la tabla de transiciones. Desde un estado terminal
// siempre devuelve false.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// PriorityRank rango de prioridad para ordenamiento en pantalla: los pedidos
// pendientes salen primero. Un estado desconocido queda al final.
func (s OrderStatus) PriorityRank() int {
	switch s {
	case StatusPending:
		return 1
	case StatusProcessing:
		return 2
	case StatusShipped:
		return 3
	case StatusDelivered:
		return 4
	case StatusCancelled:
		return 5
	}
	return 6
}

// OrderItem línea de un pedido. Inmutable después de la creación del pedido.
type OrderItem struct {
	BookID    string          `json:"book_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order representa un pedido del cliente. Lo crea el colaborador de toma de
// pedidos en estado pending; este núcleo solo muta Status. Items y OrderDate
// no se tocan nunca después del alta.
type Order struct {
	ID              string
	CustomerID      string
	CustomerName    string
	Items           []OrderItem
	TotalAmount     decimal.Decimal // autoritativo desde el alta; se reconcilia en la ingesta
	Status          OrderStatus
	OrderDate       time.Time
	PaymentMethod   string
	ShippingAddress string
	CreatedAt       time.Time
}

// ItemsTotal recalcula Σ cantidad × precio unitario sobre las líneas.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount devuelve el número de unidades del pedido.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
