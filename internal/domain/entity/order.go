package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus ciclo de vida de un pedido.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// In indica si el estado es alguno de los indicados.
func (s OrderStatus) In(statuses ...OrderStatus) bool {
	for _, st := range statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Order pedido de baterías entre vendedor, fabricante y operador logístico.
type Order struct {
	ID           string
	BatteryID    string
	BatteryName  string
	Quantity     int
	TotalPrice   decimal.Decimal
	Status       OrderStatus
	OrderDate    time.Time
	Seller       string // empresa vendedora (opcional)
	Manufacturer string // empresa fabricante (opcional)
	Logistics    string // operador logístico (opcional, vacío si aún no se asigna)
}
