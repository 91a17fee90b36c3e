package dto

import "github.com/shopspring/decimal"

// RevenueRequest periodo seleccionado en GET /slr/revenue (default month).
type RevenueRequest struct {
	Period string `query:"period" validate:"omitempty,oneof=week month year"`
}

// RevenueBreakdownDTO ingresos por estado de cobro.
type RevenueBreakdownDTO struct {
	Delivered  decimal.Decimal `json:"delivered"`
	Processing decimal.Decimal `json:"processing"` // processing + shipped
	Pending    decimal.Decimal `json:"pending"`
}

// ProductRevenueDTO ranking de productos por ingreso.
type ProductRevenueDTO struct {
	BatteryID    string          `json:"battery_id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Revenue      decimal.Decimal `json:"revenue"`
	RevenueLabel string          `json:"revenue_label"`
	Quantity     int             `json:"quantity"`
	OrderCount   int             `json:"order_count"`
}

// RevenueReportDTO respuesta de GET /slr/revenue y contenido del PDF exportado.
type RevenueReportDTO struct {
	Period            string              `json:"period"`
	TotalRevenue      decimal.Decimal     `json:"total_revenue"`
	TotalRevenueLabel string              `json:"total_revenue_label"`
	PaidOrders        int                 `json:"paid_orders"`      // delivered
	PendingPayments   int                 `json:"pending_payments"` // ni delivered ni cancelled
	TotalOrders       int                 `json:"total_orders"`
	Breakdown         RevenueBreakdownDTO `json:"breakdown"`
	TopProducts       []ProductRevenueDTO `json:"top_products"`
}

// ManufacturerRevenueDTO respuesta de GET /mfr/revenue.
type ManufacturerRevenueDTO struct {
	OrdersValue         decimal.Decimal     `json:"orders_value"`
	OrdersValueLabel    string              `json:"orders_value_label"`
	InventoryValue      decimal.Decimal     `json:"inventory_value"`
	InventoryValueLabel string              `json:"inventory_value_label"`
	TopProducts         []ProductRevenueDTO `json:"top_products"`
}

// StatusValueDTO valor de mercancía agrupado por estado de envío.
type StatusValueDTO struct {
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	Shipments   int             `json:"shipments"`
	Value       decimal.Decimal `json:"value"`
}

// LogisticsRevenueDTO respuesta de GET /lgt/revenue.
type LogisticsRevenueDTO struct {
	TotalValue      decimal.Decimal  `json:"total_value"`
	TotalValueLabel string           `json:"total_value_label"`
	ByStatus        []StatusValueDTO `json:"by_status"`
}
