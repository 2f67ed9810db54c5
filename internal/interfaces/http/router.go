package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/libreria-api/internal/application/analytics"
	"github.com/jhoicas/libreria-api/internal/application/orders"
	"github.com/jhoicas/libreria-api/internal/application/stock"
	"github.com/jhoicas/libreria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BookUC      *usecase.BookUseCase
	StockLedger *stock.LedgerUseCase
	OrderUC     *orders.LifecycleUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ExportUC    *usecase.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	books := api.Group("/books")
	bookHandler := NewBookHandler(deps.BookUC)
	books.Post("/", bookHandler.Create)
	books.Get("/", bookHandler.List)
	books.Get("/:id", bookHandler.GetByID)

	// Ledger de existencias
	stockHandler := NewStockHandler(deps.StockLedger)
	stockGroup := api.Group("/stock")
	stockGroup.Post("/adjustments", stockHandler.Adjust)
	stockGroup.Get("/adjustments", stockHandler.ListAdjustments)
	books.Patch("/:id/quantity", stockHandler.QuickAdjust)

	// Pedidos
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Ingest)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", orderHandler.SetStatus)

	// Dashboard y alertas
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
	api.Get("/inventory/alerts", dashboardHandler.GetInventoryAlerts)

	// Exportación (colaborador de reportes)
	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/export/books", exportHandler.Books)
	api.Get("/export/orders", exportHandler.Orders)
}
