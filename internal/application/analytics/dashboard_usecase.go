// Package analytics contiene los casos de uso de los tableros de cada rol y
// los reportes de ingresos.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

const (
	dashboardRecentOrders  = 3 // pedidos en el widget "Recent Orders"
	dashboardAvailableList = 4 // baterías en el widget "Available Batteries"
	unknownItem            = "Unknown Item"
)

// DashboardUseCase arma el tablero de inicio de cada rol.
//
// Fuente de datos: CatalogRepository (read-only, en memoria).
type DashboardUseCase struct {
	catalog repository.CatalogRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalog repository.CatalogRepository) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog}
}

// Seller tablero del vendedor. Totales e ingresos cuentan solo los pedidos cuya
// empresa vendedora es la del usuario.
func (uc *DashboardUseCase) Seller(user entity.User) *dto.SellerDashboardDTO {
	var own []entity.Order
	for _, o := range uc.catalog.Orders() {
		if o.Seller == user.Company {
			own = append(own, o)
		}
	}

	active := 0
	revenue := decimal.Zero
	for _, o := range own {
		if o.Status.In(entity.OrderPending, entity.OrderProcessing, entity.OrderShipped) {
			active++
		}
		revenue = revenue.Add(o.TotalPrice)
	}

	available := make([]dto.BatteryDTO, 0, dashboardAvailableList)
	for _, b := range uc.catalog.Batteries() {
		if b.Status != entity.StockAvailable {
			continue
		}
		if len(available) == dashboardAvailableList {
			break
		}
		available = append(available, dto.ToBatteryDTO(b))
	}

	return &dto.SellerDashboardDTO{
		Welcome:            welcome(user),
		TotalOrders:        len(own),
		ActiveOrders:       active,
		TotalRevenue:       revenue,
		TotalRevenueLabel:  format.Money(revenue),
		AvailableBatteries: available,
		RecentOrders:       dto.ToOrderDTOs(firstOrders(own, dashboardRecentOrders)),
	}
}

// Manufacturer tablero del fabricante: producción en stock, productos activos,
// pedidos pendientes y valor del inventario.
func (uc *DashboardUseCase) Manufacturer(user entity.User) *dto.ManufacturerDashboardDTO {
	batteries := uc.catalog.Batteries()
	orders := uc.catalog.Orders()

	production, activeProducts := 0, 0
	value := decimal.Zero
	attention := make([]dto.BatteryDTO, 0)
	for _, b := range batteries {
		production += b.Stock
		value = value.Add(b.StockValue())
		if b.Status != entity.StockOutOfStock {
			activeProducts++
		}
		if b.Status == entity.StockLow || b.Status == entity.StockOutOfStock {
			attention = append(attention, dto.ToBatteryDTO(b))
		}
	}

	pending := 0
	for _, o := range orders {
		if o.Status.In(entity.OrderPending, entity.OrderProcessing) {
			pending++
		}
	}

	return &dto.ManufacturerDashboardDTO{
		Welcome:             welcome(user),
		TotalProduction:     production,
		ActiveProducts:      activeProducts,
		PendingOrders:       pending,
		InventoryValue:      value,
		InventoryValueLabel: format.Money(value),
		Attention:           attention,
		RecentOrders:        dto.ToOrderDTOs(firstOrders(orders, dashboardRecentOrders)),
	}
}

// Logistics tablero del operador logístico. Cada envío lleva el nombre de la
// batería de su pedido ("Unknown Item" si el pedido no existe).
func (uc *DashboardUseCase) Logistics(user entity.User) *dto.LogisticsDashboardDTO {
	shipments := uc.catalog.Shipments()
	byID := indexOrders(uc.catalog.Orders())

	out := &dto.LogisticsDashboardDTO{
		Welcome:        welcome(user),
		TotalShipments: len(shipments),
		Shipments:      make([]dto.ShipmentDTO, 0, len(shipments)),
	}
	for _, s := range shipments {
		switch s.Status {
		case entity.ShipmentInTransit:
			out.InTransit++
		case entity.ShipmentDelivered:
			out.Delivered++
		case entity.ShipmentPickedUp:
			out.Pending++
		}
		name := unknownItem
		if o, ok := byID[s.OrderID]; ok {
			name = o.BatteryName
		}
		out.Shipments = append(out.Shipments, dto.ToShipmentDTO(s, name))
	}
	return out
}

func welcome(user entity.User) string {
	return "Welcome, " + user.Name
}

func firstOrders(orders []entity.Order, n int) []entity.Order {
	if len(orders) > n {
		return orders[:n]
	}
	return orders
}

func indexOrders(orders []entity.Order) map[string]entity.Order {
	m := make(map[string]entity.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return m
}
