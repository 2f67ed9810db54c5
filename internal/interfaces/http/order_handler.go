package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/application/orders"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP del ciclo de vida de pedidos.
type OrderHandler struct {
	uc *orders.LifecycleUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.LifecycleUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Ingest godoc
// @Summary      Ingresar un pedido (colaborador de toma de pedidos)
// @Description  El pedido nace en pending; el total declarado se reconcilia
//
//	contra las líneas y un desajuste se rechaza con 422.
//
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngestOrderRequest  true  "pedido con líneas inmutables"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Ingest(c *fiber.Ctx) error {
	var in dto.IngestOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Ingest(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SetStatus godoc
// @Summary      Cambiar el estado de un pedido
// @Description  Transiciones validadas por la tabla explícita; los estados
//
//	terminales (delivered, cancelled) son inmutables.
//
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del pedido"
// @Param        body  body  dto.SetOrderStatusRequest  true  "estado destino"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.SetStatus(c.Context(), c.Params("id"), entity.OrderStatus(in.Status))
	if err != nil {
		return errorResponse(c, err)
	}
	resp := orders.ToOrderResponse(order)
	return c.JSON(resp)
}

// List pedidos ordenados por prioridad: pendientes primero, luego por fecha
// descendente dentro del mismo rango.
// GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.ListRanked(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtiene un pedido por ID.
// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
