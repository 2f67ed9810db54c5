package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO línea de pedido en la API.
type OrderItemDTO struct {
	BookID    string          `json:"book_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// IngestOrderRequest body para POST /api/orders: entrada del colaborador de
// toma de pedidos. El pedido nace en pending; TotalAmount se reconcilia contra
// las líneas y un desajuste se rechaza, nunca se corrige en silencio.
type IngestOrderRequest struct {
	ID              string          `json:"id,omitempty"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Items           []OrderItemDTO  `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	OrderDate       time.Time       `json:"order_date,omitempty"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress string          `json:"shipping_address"`
}

// SetOrderStatusRequest body para PUT /api/orders/:id/status.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación HTTP de un pedido.
type OrderResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Items           []OrderItemDTO  `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	PriorityRank    int             `json:"priority_rank"`
	OrderDate       time.Time       `json:"order_date"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingAddress string          `json:"shipping_address"`
}

// OrderListResponse respuesta de GET /api/orders (lista rankeada por prioridad).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
