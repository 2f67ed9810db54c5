package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/libreria-api/internal/application/analytics"
	"github.com/jhoicas/libreria-api/internal/application/orders"
	"github.com/jhoicas/libreria-api/internal/application/stock"
	"github.com/jhoicas/libreria-api/internal/application/usecase"
	"github.com/jhoicas/libreria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/libreria-api/internal/interfaces/http"
	"github.com/jhoicas/libreria-api/pkg/config"
	"github.com/jhoicas/libreria-api/pkg/logger"
)

const swaggerSpecPath = "./docs/swagger.json"

// swaggerUI construye el middleware de Swagger UI si el archivo de spec existe.
// swagger.New lee el archivo al construirse y entra en pánico si falta, así que
// la verificación va antes: sin spec la API arranca igual, solo sin /docs.
func swaggerUI(filePath string) (fiber.Handler, bool) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, false
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Librería API",
	}), true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("low_stock_threshold", cfg.Inventory.LowStockThreshold).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	bookRepo := postgres.NewBookRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	adjRepo := postgres.NewStockAdjustmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bookUC := usecase.NewBookUseCase(bookRepo)
	stockLedgerUC := stock.NewLedgerUseCase(txRunner, adjRepo)
	orderUC := orders.NewLifecycleUseCase(txRunner, orderRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(bookRepo, orderRepo, cfg.Inventory.LowStockThreshold)
	exportUC := usecase.NewExportUseCase(bookRepo, orderRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if ui, ok := swaggerUI(swaggerSpecPath); ok {
		app.Use(ui)
	} else {
		log.Warn().Str("file", swaggerSpecPath).Msg("spec de Swagger no encontrada, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BookUC:      bookUC,
		StockLedger: stockLedgerUC,
		OrderUC:     orderUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
