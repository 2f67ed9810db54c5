package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

const recentOrdersLimit = 5 // pedidos recientes en el widget del dashboard

// DateRange rango de fechas del dashboard. Las ventanas son duraciones fijas
// hacia atrás desde "ahora": today=24h, week=7d, month=30d; all no filtra.
type DateRange string

const (
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
	RangeAll   DateRange = "all"
)

// Valid indica si el rango pertenece al conjunto definido.
func (r DateRange) Valid() bool {
	return r == RangeToday || r == RangeWeek || r == RangeMonth || r == RangeAll
}

// window devuelve la duración de la ventana y si aplica filtro (all → no).
func (r DateRange) window() (time.Duration, bool) {
	switch r {
	case RangeToday:
		return 24 * time.Hour, true
	case RangeWeek:
		return 7 * 24 * time.Hour, true
	case RangeMonth:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}

// Direcciones de tendencia respecto a la ventana anterior de igual longitud.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Trend comparación determinista del ingreso de la ventana actual contra la
// ventana inmediatamente anterior de igual longitud. Para el rango all no
// existe ventana anterior y la tendencia queda flat con delta 0.
type Trend struct {
	Direction     string
	CurrentTotal  decimal.Decimal
	PreviousTotal decimal.Decimal
	DeltaPct      decimal.Decimal // variación porcentual; 0 si la ventana anterior no tuvo ingresos
}

// OrderStatsReport métricas de pedidos de una ventana de tiempo.
type OrderStatsReport struct {
	Count             int
	TotalAmount       decimal.Decimal
	AverageOrderValue decimal.Decimal
	RecentOrders      []*entity.Order // los 5 más recientes por fecha descendente
	Trend             Trend
}

// OrderStats filtra los pedidos a [now-ventana, now], excluye los cancelados y
// deriva conteo, ingreso total, ticket promedio (0 con lista vacía, nunca
// división por cero), los cinco pedidos más recientes y la tendencia contra la
// ventana anterior. Pedidos nil o con estado desconocido se omiten.
func OrderStats(orders []*entity.Order, r DateRange, now time.Time) OrderStatsReport {
	win, bounded := r.window()
	start := now.Add(-win)

	filtered := make([]*entity.Order, 0, len(orders))
	prevTotal := decimal.Zero
	total := decimal.Zero
	for _, o := range orders {
		if o == nil || !o.Status.Valid() || o.Status == entity.StatusCancelled {
			continue
		}
		if bounded {
			if o.OrderDate.After(now) || o.OrderDate.Before(start) {
				// Ventana anterior de igual longitud, para la tendencia
				if !o.OrderDate.Before(start.Add(-win)) && o.OrderDate.Before(start) {
					prevTotal = prevTotal.Add(o.TotalAmount)
				}
				continue
			}
		}
		filtered = append(filtered, o)
		total = total.Add(o.TotalAmount)
	}

	avg := decimal.Zero
	if len(filtered) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(filtered)))).Round(2)
	}

	// Recientes: fecha descendente; el orden de inserción rompe empates (sort estable).
	recent := make([]*entity.Order, len(filtered))
	copy(recent, filtered)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].OrderDate.After(recent[j].OrderDate)
	})
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}

	return OrderStatsReport{
		Count:             len(filtered),
		TotalAmount:       total,
		AverageOrderValue: avg,
		RecentOrders:      recent,
		Trend:             compareTrend(total, prevTotal, bounded),
	}
}

// compareTrend deriva la dirección comparando ambas ventanas. Sin ventana
// anterior (rango all) la tendencia es flat.
func compareTrend(current, previous decimal.Decimal, bounded bool) Trend {
	t := Trend{
		Direction:     TrendFlat,
		CurrentTotal:  current,
		PreviousTotal: previous,
		DeltaPct:      decimal.Zero,
	}
	if !bounded {
		return t
	}
	switch current.Cmp(previous) {
	case 1:
		t.Direction = TrendUp
	case -1:
		t.Direction = TrendDown
	}
	if previous.IsPositive() {
		t.DeltaPct = current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return t
}

// RankOrders ordena para pantalla: rango de prioridad ascendente (pending
// primero) y dentro del mismo rango fecha descendente. El sort es estable: con
// clave (rango, fecha) igual se conserva el orden de entrada. No muta la lista
// recibida.
func RankOrders(orders []*entity.Order) []*entity.Order {
	ranked := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		ranked = append(ranked, o)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Status.PriorityRank(), ranked[j].Status.PriorityRank()
		if ri != rj {
			return ri < rj
		}
		return ranked[i].OrderDate.After(ranked[j].OrderDate)
	})
	return ranked
}
