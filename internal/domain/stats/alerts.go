// Package stats contiene el motor de estadísticas y alertas: funciones puras
// sobre un snapshot de libros y pedidos. No guarda estado ni muta sus entradas,
// por lo que es seguro llamarlo de forma concurrente y repetida.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

// DefaultLowStockThreshold umbral por defecto de stock bajo. El valor real se
// inyecta por configuración; esta constante solo documenta el default.
const DefaultLowStockThreshold = 5

// AlertReport partición exhaustiva y disyunta del catálogo por nivel de
// existencias, más el valor total del inventario.
type AlertReport struct {
	OutOfStock          []*entity.Book
	LowStock            []*entity.Book
	Available           []*entity.Book
	TotalInventoryValue decimal.Decimal
}

// InventoryAlerts clasifica cada libro en exactamente una de tres categorías:
// agotado (cantidad 0), stock bajo (0 < cantidad ≤ umbral) o disponible.
// Un registro malformado con cantidad negativa se trata como agotado en lugar
// de tumbar la agregación. Si el umbral recibido no es positivo se usa el default.
func InventoryAlerts(books []*entity.Book, lowStockThreshold int) AlertReport {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	report := AlertReport{
		OutOfStock:          []*entity.Book{},
		LowStock:            []*entity.Book{},
		Available:           []*entity.Book{},
		TotalInventoryValue: decimal.Zero,
	}
	for _, b := range books {
		if b == nil {
			continue
		}
		switch {
		case b.Quantity <= 0:
			report.OutOfStock = append(report.OutOfStock, b)
		case b.Quantity <= lowStockThreshold:
			report.LowStock = append(report.LowStock, b)
		default:
			report.Available = append(report.Available, b)
		}
		report.TotalInventoryValue = report.TotalInventoryValue.Add(b.InventoryValue())
	}
	return report
}
