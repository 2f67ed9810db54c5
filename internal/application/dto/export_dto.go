package dto

import "github.com/shopspring/decimal"

// Formas planas para el colaborador de exportación/reportes. El orden y la
// presencia de los campos son estables: los consumidores hacen diff sobre la
// salida serializada, no agregar omitempty ni reordenar.

// BookExportDTO registro plano de libro para exportación.
type BookExportDTO struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderExportDTO registro plano de pedido para exportación.
// OrderDate serializada en ISO 8601 (RFC 3339).
type OrderExportDTO struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerID    string          `json:"customerId"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	OrderDate     string          `json:"orderDateISO8601"`
	ItemCount     int             `json:"itemCount"`
	PaymentMethod string          `json:"paymentMethod"`
}
