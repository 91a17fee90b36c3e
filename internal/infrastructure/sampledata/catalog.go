package sampledata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
)

var _ repository.CatalogRepository = (*Catalog)(nil)

// Catalog catálogo estático de baterías, pedidos y envíos.
type Catalog struct {
	batteries []entity.Battery
	orders    []entity.Order
	shipments []entity.Shipment
}

// NewCatalog construye el catálogo con los datos de muestra.
func NewCatalog() *Catalog {
	return &Catalog{
		batteries: sampleBatteries(),
		orders:    sampleOrders(),
		shipments: sampleShipments(),
	}
}

// NewCatalogWith construye un catálogo con datos arbitrarios (tests).
func NewCatalogWith(batteries []entity.Battery, orders []entity.Order, shipments []entity.Shipment) *Catalog {
	return &Catalog{batteries: batteries, orders: orders, shipments: shipments}
}

// Batteries devuelve una copia de las baterías.
func (c *Catalog) Batteries() []entity.Battery {
	out := make([]entity.Battery, len(c.batteries))
	copy(out, c.batteries)
	return out
}

// Orders devuelve una copia de los pedidos.
func (c *Catalog) Orders() []entity.Order {
	out := make([]entity.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Shipments devuelve una copia de los envíos.
func (c *Catalog) Shipments() []entity.Shipment {
	out := make([]entity.Shipment, len(c.shipments))
	copy(out, c.shipments)
	return out
}

const (
	companySeller       = "Battery Retailers Inc."
	companyManufacturer = "PowerCell Manufacturing"
	companyLogistics    = "FastShip Logistics"
)

func sampleBatteries() []entity.Battery {
	return []entity.Battery{
		{ID: "bat001", Name: "LiPo High Performance 5000mAh", Type: "Lithium Polymer", Capacity: "5000mAh", Voltage: "11.1V",
			Manufacturer: companyManufacturer, Price: decimal.RequireFromString("89.99"), Stock: 150, Status: entity.StockAvailable},
		{ID: "bat002", Name: "Li-ion Industrial 10000mAh", Type: "Lithium Ion", Capacity: "10000mAh", Voltage: "12V",
			Manufacturer: companyManufacturer, Price: decimal.RequireFromString("149.99"), Stock: 75, Status: entity.StockAvailable},
		{ID: "bat003", Name: "LiFePO4 Solar 200Ah", Type: "Lithium Iron Phosphate", Capacity: "200Ah", Voltage: "12.8V",
			Manufacturer: companyManufacturer, Price: decimal.RequireFromString("599.99"), Stock: 25, Status: entity.StockLow},
		{ID: "bat004", Name: "NiMH AA Rechargeable Pack", Type: "Nickel Metal Hydride", Capacity: "2500mAh", Voltage: "1.2V",
			Manufacturer: companyManufacturer, Price: decimal.RequireFromString("19.99"), Stock: 500, Status: entity.StockAvailable},
		{ID: "bat005", Name: "AGM Deep Cycle 100Ah", Type: "Lead Acid AGM", Capacity: "100Ah", Voltage: "12V",
			Manufacturer: companyManufacturer, Price: decimal.RequireFromString("249.99"), Stock: 0, Status: entity.StockOutOfStock},
	}
}

func sampleOrders() []entity.Order {
	return []entity.Order{
		{ID: "ord001", BatteryID: "bat001", BatteryName: "LiPo High Performance 5000mAh", Quantity: 50,
			TotalPrice: decimal.RequireFromString("4499.50"), Status: entity.OrderDelivered, OrderDate: day(2025, 12, 15),
			Seller: companySeller, Manufacturer: companyManufacturer, Logistics: companyLogistics},
		{ID: "ord002", BatteryID: "bat002", BatteryName: "Li-ion Industrial 10000mAh", Quantity: 30,
			TotalPrice: decimal.RequireFromString("4499.70"), Status: entity.OrderShipped, OrderDate: day(2025, 12, 20),
			Seller: companySeller, Manufacturer: companyManufacturer, Logistics: companyLogistics},
		{ID: "ord003", BatteryID: "bat003", BatteryName: "LiFePO4 Solar 200Ah", Quantity: 10,
			TotalPrice: decimal.RequireFromString("5999.90"), Status: entity.OrderProcessing, OrderDate: day(2025, 12, 25),
			Seller: companySeller, Manufacturer: companyManufacturer, Logistics: companyLogistics},
		{ID: "ord004", BatteryID: "bat004", BatteryName: "NiMH AA Rechargeable Pack", Quantity: 100,
			TotalPrice: decimal.RequireFromString("1999.00"), Status: entity.OrderPending, OrderDate: day(2025, 12, 28),
			Seller: companySeller, Manufacturer: companyManufacturer},
	}
}

func sampleShipments() []entity.Shipment {
	origin := "PowerCell Manufacturing, San Jose, CA"
	destination := "Battery Retailers Inc., Austin, TX"
	return []entity.Shipment{
		{ID: "shp001", OrderID: "ord001", Origin: origin, Destination: destination, Status: entity.ShipmentDelivered,
			TrackingNumber: "FS1234567890", EstimatedDelivery: day(2025, 12, 18), CurrentLocation: "Delivered"},
		{ID: "shp002", OrderID: "ord002", Origin: origin, Destination: destination, Status: entity.ShipmentInTransit,
			TrackingNumber: "FS1234567891", EstimatedDelivery: day(2025, 12, 30), CurrentLocation: "Phoenix, AZ Distribution Center"},
		{ID: "shp003", OrderID: "ord003", Origin: origin, Destination: destination, Status: entity.ShipmentPickedUp,
			TrackingNumber: "FS1234567892", EstimatedDelivery: day(2026, 1, 2), CurrentLocation: "Origin Facility"},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
