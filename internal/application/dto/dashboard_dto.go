package dto

import "github.com/shopspring/decimal"

// SellerDashboardDTO respuesta de GET /slr. Los totales cubren solo los pedidos de la empresa del usuario.
type SellerDashboardDTO struct {
	Welcome            string          `json:"welcome"`
	TotalOrders        int             `json:"total_orders"`
	ActiveOrders       int             `json:"active_orders"` // pending, processing, shipped
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalRevenueLabel  string          `json:"total_revenue_label"`
	AvailableBatteries []BatteryDTO    `json:"available_batteries"`
	RecentOrders       []OrderDTO      `json:"recent_orders"`
}

// ManufacturerDashboardDTO respuesta de GET /mfr.
type ManufacturerDashboardDTO struct {
	Welcome             string          `json:"welcome"`
	TotalProduction     int             `json:"total_production"` // unidades en stock
	ActiveProducts      int             `json:"active_products"`  // status != out_of_stock
	PendingOrders       int             `json:"pending_orders"`   // pending, processing
	InventoryValue      decimal.Decimal `json:"inventory_value"`  // sum(price * stock)
	InventoryValueLabel string          `json:"inventory_value_label"`
	Attention           []BatteryDTO    `json:"attention"` // low_stock u out_of_stock
	RecentOrders        []OrderDTO      `json:"recent_orders"`
}

// LogisticsDashboardDTO respuesta de GET /lgt.
type LogisticsDashboardDTO struct {
	Welcome        string        `json:"welcome"`
	TotalShipments int           `json:"total_shipments"`
	InTransit      int           `json:"in_transit"`
	Delivered      int           `json:"delivered"`
	Pending        int           `json:"pending"` // picked_up
	Shipments      []ShipmentDTO `json:"shipments"`
}
