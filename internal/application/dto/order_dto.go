package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

// OrderDTO pedido en listados.
type OrderDTO struct {
	ID           string          `json:"id"`
	BatteryID    string          `json:"battery_id"`
	BatteryName  string          `json:"battery_name"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	TotalLabel   string          `json:"total_label"`
	Status       string          `json:"status"`
	StatusLabel  string          `json:"status_label"`
	OrderDate    string          `json:"order_date"` // YYYY-MM-DD
	Seller       string          `json:"seller,omitempty"`
	Manufacturer string          `json:"manufacturer,omitempty"`
	Logistics    string          `json:"logistics,omitempty"`
}

// SellerOrdersRequest pestaña de GET /slr/orders (default source).
type SellerOrdersRequest struct {
	Tab string `query:"tab" validate:"omitempty,oneof=source received"`
}

// SellerOrdersDTO pedidos del vendedor: source = aceptados en curso, received = pendientes de acción.
type SellerOrdersDTO struct {
	Tab             string     `json:"tab"`
	TotalOrders     int        `json:"total_orders"`
	ActiveOrders    int        `json:"active_orders"`
	CompletedOrders int        `json:"completed_orders"`
	Items           []OrderDTO `json:"items"`
}

// ManufacturerOrdersRequest filtro de GET /mfr/orders (default all).
type ManufacturerOrdersRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=all received accepted in_transit more_info"`
}

// ManufacturerOrdersDTO pedidos del fabricante con contadores por pestaña.
type ManufacturerOrdersDTO struct {
	Filter    string     `json:"filter"`
	Received  int        `json:"received"`
	Accepted  int        `json:"accepted"`
	InTransit int        `json:"in_transit"`
	NeedsInfo int        `json:"needs_info"`
	Items     []OrderDTO `json:"items"`
}

// LogisticsOrdersDTO pedidos asignados al operador logístico.
type LogisticsOrdersDTO struct {
	Provider string     `json:"provider"`
	Items    []OrderDTO `json:"items"`
}

// ToOrderDTO convierte un pedido.
func ToOrderDTO(o entity.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID,
		BatteryID:    o.BatteryID,
		BatteryName:  o.BatteryName,
		Quantity:     o.Quantity,
		TotalPrice:   o.TotalPrice,
		TotalLabel:   format.Money(o.TotalPrice),
		Status:       string(o.Status),
		StatusLabel:  format.StatusLabel(string(o.Status)),
		OrderDate:    o.OrderDate.Format("2006-01-02"),
		Seller:       o.Seller,
		Manufacturer: o.Manufacturer,
		Logistics:    o.Logistics,
	}
}

// ToOrderDTOs convierte una lista; nunca devuelve nil para que el JSON sea [].
func ToOrderDTOs(orders []entity.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderDTO(o))
	}
	return out
}
