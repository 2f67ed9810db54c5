package dto

import "github.com/shopspring/decimal"

// TrendDTO tendencia de ingresos contra la ventana anterior de igual longitud.
type TrendDTO struct {
	Direction     string          `json:"direction"` // up | down | flat
	CurrentTotal  decimal.Decimal `json:"current_total"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	DeltaPct      decimal.Decimal `json:"delta_pct"`
}

// TopSellerDTO libro del widget de más vendidos.
type TopSellerDTO struct {
	BookID   string          `json:"book_id"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	Sales    int             `json:"sales"`
	Quantity int             `json:"quantity"`
}

// DashboardSnapshotDTO respuesta de GET /api/dashboard/summary.
// Derivado en su totalidad del snapshot actual de libros y pedidos; se
// recalcula en cada consulta, nunca se muta en sitio.
type DashboardSnapshotDTO struct {
	Range               string          `json:"range"` // today | week | month | all
	OrderCount          int             `json:"order_count"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AverageOrderValue   decimal.Decimal `json:"average_order_value"`
	Trend               TrendDTO        `json:"trend"`
	RecentOrders        []OrderResponse `json:"recent_orders"` // los 5 más recientes de la ventana
	OutOfStockCount     int             `json:"out_of_stock_count"`
	LowStockCount       int             `json:"low_stock_count"`
	AvailableCount      int             `json:"available_count"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	TopSellers          []TopSellerDTO  `json:"top_sellers"`
}

// InventoryAlertsDTO respuesta de GET /api/inventory/alerts.
type InventoryAlertsDTO struct {
	LowStockThreshold   int             `json:"low_stock_threshold"`
	OutOfStock          []BookResponse  `json:"out_of_stock"`
	LowStock            []BookResponse  `json:"low_stock"`
	Available           []BookResponse  `json:"available"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}
