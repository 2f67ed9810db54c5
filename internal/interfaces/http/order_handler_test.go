package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/application/orders"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
	httpiface "github.com/jhoicas/libreria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y arranque de la app
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetForUpdate(_ context.Context, id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status entity.OrderStatus) error {
	f.orders[id].Status = status
	return nil
}

type fakeOrderTx struct{ repo *fakeOrderRepo }

func (f *fakeOrderTx) RunOrders(ctx context.Context, fn func(repository.OrderRepository) error) error {
	return fn(f.repo)
}

// failingOrderTx simula una transacción que no llega a completarse (conflicto
// de serialización, BD caída).
type failingOrderTx struct{ err error }

func (f *failingOrderTx) RunOrders(context.Context, func(repository.OrderRepository) error) error {
	return f.err
}

func newFailingOrderApp(txErr error) *fiber.App {
	repo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	uc := orders.NewLifecycleUseCase(&failingOrderTx{err: txErr}, repo)
	h := httpiface.NewOrderHandler(uc)

	app := fiber.New()
	app.Put("/api/orders/:id/status", h.SetStatus)
	return app
}

func newOrderApp(list ...*entity.Order) (*fiber.App, *fakeOrderRepo) {
	repo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	for _, o := range list {
		repo.orders[o.ID] = o
	}
	uc := orders.NewLifecycleUseCase(&fakeOrderTx{repo: repo}, repo)
	h := httpiface.NewOrderHandler(uc)

	app := fiber.New()
	app.Post("/api/orders", h.Ingest)
	app.Get("/api/orders/:id", h.GetByID)
	app.Put("/api/orders/:id/status", h.SetStatus)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*stdhttp.Response, dto.ErrorResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var errBody dto.ErrorResponse
	_ = json.Unmarshal(raw, &errBody)
	return resp, errBody
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de la taxonomía de errores a HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_HTTP_TransicionInvalidaDa409(t *testing.T) {
	app, _ := newOrderApp(&entity.Order{ID: "o1", Status: entity.StatusPending, OrderDate: time.Now()})

	resp, errBody := doJSON(t, app, stdhttp.MethodPut, "/api/orders/o1/status",
		dto.SetOrderStatusRequest{Status: "shipped"})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", errBody.Code)
	assert.Contains(t, errBody.Message, "o1", "el mensaje debe incluir el ID del pedido")
}

func TestSetStatus_HTTP_PedidoInexistenteDa404(t *testing.T) {
	app, _ := newOrderApp()

	resp, errBody := doJSON(t, app, stdhttp.MethodPut, "/api/orders/nada/status",
		dto.SetOrderStatusRequest{Status: "processing"})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestSetStatus_HTTP_EstadoDesconocidoDa400(t *testing.T) {
	app, _ := newOrderApp(&entity.Order{ID: "o1", Status: entity.StatusPending, OrderDate: time.Now()})

	resp, errBody := doJSON(t, app, stdhttp.MethodPut, "/api/orders/o1/status",
		dto.SetOrderStatusRequest{Status: "archivado"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestSetStatus_HTTP_ConflictoDeConcurrenciaDa409(t *testing.T) {
	app := newFailingOrderApp(fmt.Errorf("pedido o1: %w", domain.ErrConflict))

	resp, errBody := doJSON(t, app, stdhttp.MethodPut, "/api/orders/o1/status",
		dto.SetOrderStatusRequest{Status: "processing"})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONCURRENCY_CONFLICT", errBody.Code)
}

func TestSetStatus_HTTP_FalloDePersistenciaDa503(t *testing.T) {
	app := newFailingOrderApp(fmt.Errorf("actualizar estado: %w", domain.ErrPersistence))

	resp, errBody := doJSON(t, app, stdhttp.MethodPut, "/api/orders/o1/status",
		dto.SetOrderStatusRequest{Status: "processing"})

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "PERSISTENCE", errBody.Code)
}

func TestSetStatus_HTTP_TransicionValida(t *testing.T) {
	app, repo := newOrderApp(&entity.Order{ID: "o1", Status: entity.StatusPending, OrderDate: time.Now()})

	resp, _ := doJSON(t, app, stdhttp.MethodPut, "/api/orders/o1/status",
		dto.SetOrderStatusRequest{Status: "processing"})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.StatusProcessing, repo.orders["o1"].Status)
}

func TestIngest_HTTP_PedidoValidoDa201(t *testing.T) {
	app, repo := newOrderApp()

	resp, _ := doJSON(t, app, stdhttp.MethodPost, "/api/orders", dto.IngestOrderRequest{
		CustomerID:   "c-1",
		CustomerName: "María Pérez",
		Items: []dto.OrderItemDTO{
			{BookID: "b1", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		},
		TotalAmount: decimal.RequireFromString("20.00"),
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, repo.orders, 1)
}

func TestIngest_HTTP_TotalQueNoCuadraDa422(t *testing.T) {
	app, repo := newOrderApp()

	resp, errBody := doJSON(t, app, stdhttp.MethodPost, "/api/orders", dto.IngestOrderRequest{
		CustomerID:   "c-1",
		CustomerName: "María Pérez",
		Items: []dto.OrderItemDTO{
			{BookID: "b1", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		},
		TotalAmount: decimal.RequireFromString("50.00"),
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "TOTAL_MISMATCH", errBody.Code)
	assert.Empty(t, repo.orders)
}

func TestIngest_HTTP_CuerpoMalformadoDa400(t *testing.T) {
	app, _ := newOrderApp()

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/orders", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetByID_HTTP_DevuelvePrioridad(t *testing.T) {
	app, _ := newOrderApp(&entity.Order{ID: "o1", Status: entity.StatusPending, OrderDate: time.Now()})

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/orders/o1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "o1", body.ID)
	assert.Equal(t, 1, body.PriorityRank, "pending tiene la máxima prioridad de atención")
}
