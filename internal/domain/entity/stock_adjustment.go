package entity

import "time"

// Operaciones del ledger de existencias.
const (
	OpSet      = "SET"      // fija la cantidad exacta
	OpAdd      = "ADD"      // suma unidades
	OpSubtract = "SUBTRACT" // resta unidades con clamp en 0
)

// ValidOperation indica si op pertenece al conjunto de operaciones del ledger.
func ValidOperation(op string) bool {
	return op == OpSet || op == OpAdd || op == OpSubtract
}

// StockAdjustment registro de auditoría de una mutación de existencias.
// Guarda tanto la cantidad solicitada como la resultante: con el clamp de
// SUBTRACT ambas pueden diferir y la diferencia es inventario perdido que
// el conciliador externo puede rastrear.
type StockAdjustment struct {
	ID                string
	TransactionID     string
	BookID            string
	Operation         string
	RequestedAmount   int
	PreviousQuantity  int
	ResultingQuantity int
	Reason            string
	CreatedAt         time.Time
}
