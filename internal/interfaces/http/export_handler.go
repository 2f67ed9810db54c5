package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-api/internal/application/usecase"
)

// ExportHandler sirve los registros planos para el colaborador de exportación.
// El esquema es estable: los consumidores hacen diff sobre la salida.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Books exporta el catálogo completo.
// GET /api/export/books
func (h *ExportHandler) Books(c *fiber.Ctx) error {
	out, err := h.uc.Books(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Orders exporta todos los pedidos.
// GET /api/export/orders
func (h *ExportHandler) Orders(c *fiber.Ctx) error {
	out, err := h.uc.Orders(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
