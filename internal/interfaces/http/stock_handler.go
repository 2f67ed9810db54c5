package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del ledger de existencias.
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar existencias de un libro
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "book_id, operation (SET|ADD|SUBTRACT), amount, reason"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/adjustments [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Adjust(c.Context(), stock.AdjustInput{
		BookID:    in.BookID,
		Operation: in.Operation,
		Amount:    in.Amount,
		Reason:    in.Reason,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toAdjustResponse(res))
}

// QuickAdjust ajuste rápido con delta con signo (botón +/- del panel).
// PATCH /api/books/:id/quantity
func (h *StockHandler) QuickAdjust(c *fiber.Ctx) error {
	var in dto.QuickAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.QuickAdjust(c.Context(), c.Params("id"), in.Delta)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toAdjustResponse(res))
}

// ListAdjustments historial de auditoría del ledger, el más reciente primero.
// GET /api/stock/adjustments?limit=50
func (h *StockHandler) ListAdjustments(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	list, err := h.uc.ListAdjustments(c.Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "adjustments": list})
}

func toAdjustResponse(res *stock.AdjustResult) dto.AdjustStockResponse {
	b := res.Book
	return dto.AdjustStockResponse{
		Book: dto.BookResponse{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Category:  b.Category,
			Price:     b.Price,
			Quantity:  b.Quantity,
			Barcode:   b.Barcode,
			Sales:     b.Sales,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		},
		PreviousQuantity: res.PreviousQuantity,
		NewQuantity:      res.NewQuantity,
	}
}
