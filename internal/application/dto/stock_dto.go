package dto

import "time"

// AdjustStockRequest body para POST /api/stock/adjustments.
// Operation ∈ {SET, ADD, SUBTRACT}; Amount debe ser un entero no negativo.
type AdjustStockRequest struct {
	BookID    string `json:"book_id"`
	Operation string `json:"operation"`
	Amount    int    `json:"amount"`
	Reason    string `json:"reason,omitempty"`
}

// QuickAdjustRequest body para PATCH /api/books/:id/quantity.
// Delta positivo suma, negativo resta (con clamp en 0).
type QuickAdjustRequest struct {
	Delta int `json:"delta"`
}

// AdjustStockResponse resultado de un ajuste aplicado.
type AdjustStockResponse struct {
	Book             BookResponse `json:"book"`
	PreviousQuantity int          `json:"previous_quantity"`
	NewQuantity      int          `json:"new_quantity"`
}

// StockAdjustmentDTO fila del historial de ajustes (auditoría).
type StockAdjustmentDTO struct {
	ID                string    `json:"id"`
	TransactionID     string    `json:"transaction_id"`
	BookID            string    `json:"book_id"`
	Operation         string    `json:"operation"`
	RequestedAmount   int       `json:"requested_amount"`
	PreviousQuantity  int       `json:"previous_quantity"`
	ResultingQuantity int       `json:"resulting_quantity"`
	Reason            string    `json:"reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
