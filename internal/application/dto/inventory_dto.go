package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

// BatteryDTO batería en listados de inventario. Location y Contact solo en el inventario del fabricante.
type BatteryDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Capacity     string          `json:"capacity"`
	Voltage      string          `json:"voltage"`
	Manufacturer string          `json:"manufacturer"`
	Price        decimal.Decimal `json:"price"`
	PriceLabel   string          `json:"price_label"`
	Stock        int             `json:"stock"`
	Status       string          `json:"status"`
	StatusLabel  string          `json:"status_label"`
	Location     string          `json:"location,omitempty"`
	Contact      string          `json:"contact,omitempty"`
}

// SellerInventoryRequest filtros de GET /slr/inv.
type SellerInventoryRequest struct {
	Query string `query:"q" validate:"max=100"`
}

// SellerInventoryDTO inventario visto por el vendedor.
type SellerInventoryDTO struct {
	TotalItems int          `json:"total_items"`
	Available  int          `json:"available"`
	LowStock   int          `json:"low_stock"`
	Query      string       `json:"query"`
	Items      []BatteryDTO `json:"items"`
}

// ManufacturerInventoryRequest filtros de GET /mfr/inv. Vacío equivale a "all".
type ManufacturerInventoryRequest struct {
	Query    string `query:"q" validate:"max=100"`
	Status   string `query:"status" validate:"omitempty,oneof=all available low_stock out_of_stock"`
	Location string `query:"location" validate:"max=50"`
}

// ManufacturerInventoryDTO inventario del fabricante con ubicación y contacto.
type ManufacturerInventoryDTO struct {
	TotalUnits      int                          `json:"total_units"`
	LowStock        int                          `json:"low_stock"`
	OutOfStock      int                          `json:"out_of_stock"`
	TotalValue      decimal.Decimal              `json:"total_value"`
	TotalValueLabel string                       `json:"total_value_label"`
	Locations       []string                     `json:"locations"`
	Filters         ManufacturerInventoryRequest `json:"filters"`
	Items           []BatteryDTO                 `json:"items"`
}

// CargoDTO mercancía en poder del operador logístico.
type CargoDTO struct {
	ShipmentID      string `json:"shipment_id"`
	OrderID         string `json:"order_id"`
	BatteryName     string `json:"battery_name"`
	Quantity        int    `json:"quantity"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	CurrentLocation string `json:"current_location"`
}

// LogisticsCargoDTO inventario en tránsito (envíos no entregados).
type LogisticsCargoDTO struct {
	TotalUnits int        `json:"total_units"`
	Items      []CargoDTO `json:"items"`
}

// ToBatteryDTO convierte una batería del catálogo.
func ToBatteryDTO(b entity.Battery) BatteryDTO {
	return BatteryDTO{
		ID:           b.ID,
		Name:         b.Name,
		Type:         b.Type,
		Capacity:     b.Capacity,
		Voltage:      b.Voltage,
		Manufacturer: b.Manufacturer,
		Price:        b.Price,
		PriceLabel:   format.Money(b.Price),
		Stock:        b.Stock,
		Status:       string(b.Status),
		StatusLabel:  format.StatusLabel(string(b.Status)),
	}
}
