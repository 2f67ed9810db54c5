package stats

import (
	"sort"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

// DefaultTopSellers número de títulos en el widget de más vendidos.
const DefaultTopSellers = 5

// TopSellers devuelve los n libros con más ventas acumuladas, de mayor a menor.
// El contador Sales lo mantiene el proceso externo de despacho; aquí solo se
// lee. Sort estable: a igual número de ventas gana el orden de inserción del
// catálogo. No muta la lista recibida.
func TopSellers(books []*entity.Book, n int) []*entity.Book {
	if n <= 0 {
		n = DefaultTopSellers
	}
	sorted := make([]*entity.Book, 0, len(books))
	for _, b := range books {
		if b == nil {
			continue
		}
		sorted = append(sorted, b)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sales > sorted[j].Sales
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
