package entity

import "github.com/shopspring/decimal"

// StockStatus estado de disponibilidad de una batería en catálogo.
type StockStatus string

const (
	StockAvailable  StockStatus = "available"
	StockLow        StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// Battery producto del catálogo de baterías.
type Battery struct {
	ID           string
	Name         string
	Type         string // química: Lithium Polymer, Lithium Ion, ...
	Capacity     string
	Voltage      string
	Manufacturer string
	Price        decimal.Decimal // precio unitario
	Stock        int
	Status       StockStatus
}

// StockValue valor del stock al precio de venta (price * stock).
func (b Battery) StockValue() decimal.Decimal {
	return b.Price.Mul(decimal.NewFromInt(int64(b.Stock)))
}
