package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book representa un libro del catálogo. El núcleo solo es dueño de Quantity;
// los demás campos los administra el colaborador de catálogo. Sales lo mantiene
// el proceso externo de despacho y aquí es de solo lectura (ranking de ventas).
type Book struct {
	ID        string
	Title     string
	Author    string
	Category  string
	Price     decimal.Decimal // precio de venta, nunca negativo
	Quantity  int             // existencias, nunca negativo (clamp en el ledger)
	Barcode   string          // código de barras, opcional y único
	Sales     int             // unidades vendidas acumuladas
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryValue devuelve precio × cantidad del libro (0 si la cantidad es inválida).
func (b *Book) InventoryValue() decimal.Decimal {
	if b.Quantity <= 0 {
		return decimal.Zero
	}
	return b.Price.Mul(decimal.NewFromInt(int64(b.Quantity)))
}
