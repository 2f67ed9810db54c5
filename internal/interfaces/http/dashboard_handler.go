package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/libreria-api/internal/application/analytics"
	"github.com/jhoicas/libreria-api/internal/domain/stats"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard y alertas.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el snapshot del dashboard para la ventana indicada.
// GET /api/dashboard/summary?range=today|week|month|all (default all)
//
// Respuesta: DashboardSnapshotDTO (métricas de pedidos, tendencia contra la
// ventana anterior, conteos de alertas, valor de inventario, top 5 vendidos).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	r := stats.DateRange(c.Query("range", string(stats.RangeAll)))
	snapshot, err := h.uc.GetSnapshot(c.Context(), r)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(snapshot)
}

// GetInventoryAlerts devuelve la partición del catálogo por nivel de existencias.
// GET /api/inventory/alerts
func (h *DashboardHandler) GetInventoryAlerts(c *fiber.Ctx) error {
	alerts, err := h.uc.GetInventoryAlerts(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(alerts)
}
