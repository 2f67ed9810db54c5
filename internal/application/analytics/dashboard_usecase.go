// Package analytics contiene el caso de uso del Dashboard: arma el snapshot de
// métricas, alertas de inventario y ranking de más vendidos a partir del motor
// puro de estadísticas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/libreria-api/internal/application/dto"
	"github.com/jhoicas/libreria-api/internal/application/orders"
	"github.com/jhoicas/libreria-api/internal/domain"
	"github.com/jhoicas/libreria-api/internal/domain/entity"
	"github.com/jhoicas/libreria-api/internal/domain/repository"
	"github.com/jhoicas/libreria-api/internal/domain/stats"
)

// DashboardUseCase deriva el snapshot del dashboard bajo demanda.
//
// Fuente de datos: los repositorios de libros y pedidos (lecturas de una sola
// pasada). No coordina con los escritores: una ventana breve de staleness es
// aceptable para métricas de pantalla.
type DashboardUseCase struct {
	bookRepo          repository.BookRepository
	orderRepo         repository.OrderRepository
	lowStockThreshold int // inyectado por configuración, default 5
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	bookRepo repository.BookRepository,
	orderRepo repository.OrderRepository,
	lowStockThreshold int,
) *DashboardUseCase {
	if lowStockThreshold <= 0 {
		lowStockThreshold = stats.DefaultLowStockThreshold
	}
	return &DashboardUseCase{
		bookRepo:          bookRepo,
		orderRepo:         orderRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// GetSnapshot construye el DashboardSnapshotDTO para la ventana indicada.
//
// Dos lecturas en paralelo:
//  1. List de libros   → alertas + valor de inventario + más vendidos
//  2. List de pedidos  → métricas de la ventana + tendencia + recientes
func (uc *DashboardUseCase) GetSnapshot(ctx context.Context, r stats.DateRange) (*dto.DashboardSnapshotDTO, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("rango %q desconocido: %w", r, domain.ErrInvalidInput)
	}

	type booksResult struct {
		books []*entity.Book
		err   error
	}
	type ordersResult struct {
		orders []*entity.Order
		err    error
	}

	booksCh := make(chan booksResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		books, err := uc.bookRepo.List(ctx)
		booksCh <- booksResult{books, err}
	}()
	go func() {
		ords, err := uc.orderRepo.List(ctx)
		ordersCh <- ordersResult{ords, err}
	}()

	bks := <-booksCh
	ords := <-ordersCh

	if bks.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot de libros: %w", bks.err)
	}
	if ords.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot de pedidos: %w", ords.err)
	}

	alerts := stats.InventoryAlerts(bks.books, uc.lowStockThreshold)
	orderStats := stats.OrderStats(ords.orders, r, time.Now())
	top := stats.TopSellers(bks.books, stats.DefaultTopSellers)

	recent := make([]dto.OrderResponse, 0, len(orderStats.RecentOrders))
	for _, o := range orderStats.RecentOrders {
		recent = append(recent, orders.ToOrderResponse(o))
	}
	topSellers := make([]dto.TopSellerDTO, 0, len(top))
	for _, b := range top {
		topSellers = append(topSellers, dto.TopSellerDTO{
			BookID:   b.ID,
			Title:    b.Title,
			Author:   b.Author,
			Price:    b.Price,
			Sales:    b.Sales,
			Quantity: b.Quantity,
		})
	}

	return &dto.DashboardSnapshotDTO{
		Range:             string(r),
		OrderCount:        orderStats.Count,
		TotalRevenue:      orderStats.TotalAmount,
		AverageOrderValue: orderStats.AverageOrderValue,
		Trend: dto.TrendDTO{
			Direction:     orderStats.Trend.Direction,
			CurrentTotal:  orderStats.Trend.CurrentTotal,
			PreviousTotal: orderStats.Trend.PreviousTotal,
			DeltaPct:      orderStats.Trend.DeltaPct,
		},
		RecentOrders:        recent,
		OutOfStockCount:     len(alerts.OutOfStock),
		LowStockCount:       len(alerts.LowStock),
		AvailableCount:      len(alerts.Available),
		TotalInventoryValue: alerts.TotalInventoryValue,
		TopSellers:          topSellers,
	}, nil
}

// GetInventoryAlerts devuelve la partición completa del catálogo por nivel de
// existencias, con las listas de libros de cada categoría.
func (uc *DashboardUseCase) GetInventoryAlerts(ctx context.Context) (*dto.InventoryAlertsDTO, error) {
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: snapshot de libros: %w", err)
	}
	report := stats.InventoryAlerts(books, uc.lowStockThreshold)
	return &dto.InventoryAlertsDTO{
		LowStockThreshold:   uc.lowStockThreshold,
		OutOfStock:          toBookResponses(report.OutOfStock),
		LowStock:            toBookResponses(report.LowStock),
		Available:           toBookResponses(report.Available),
		TotalInventoryValue: report.TotalInventoryValue,
	}, nil
}

func toBookResponses(books []*entity.Book) []dto.BookResponse {
	out := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, dto.BookResponse{
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
		})
	}
	return out
}
