package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

// DefaultPeriod periodo mostrado si la petición no indica uno.
const DefaultPeriod = "month"

// RevenueUseCase calcula los reportes de ingresos de cada rol.
type RevenueUseCase struct {
	catalog   repository.CatalogRepository
	generator RevenueReportGenerator
	now       func() time.Time
}

// NewRevenueUseCase construye el caso de uso. generator puede ser nil si no se exporta PDF.
func NewRevenueUseCase(catalog repository.CatalogRepository, generator RevenueReportGenerator) *RevenueUseCase {
	return &RevenueUseCase{catalog: catalog, generator: generator, now: time.Now}
}

// Seller reporte de ingresos del vendedor sobre todos los pedidos del catálogo.
// period solo etiqueta la vista; las cifras no se recortan por fecha.
func (uc *RevenueUseCase) Seller(period string) *dto.RevenueReportDTO {
	if period == "" {
		period = DefaultPeriod
	}
	orders := uc.catalog.Orders()

	report := &dto.RevenueReportDTO{
		Period:       period,
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
		Breakdown: dto.RevenueBreakdownDTO{
			Delivered:  decimal.Zero,
			Processing: decimal.Zero,
			Pending:    decimal.Zero,
		},
	}
	for _, o := range orders {
		report.TotalRevenue = report.TotalRevenue.Add(o.TotalPrice)
		switch o.Status {
		case entity.OrderDelivered:
			report.PaidOrders++
			report.Breakdown.Delivered = report.Breakdown.Delivered.Add(o.TotalPrice)
		case entity.OrderProcessing, entity.OrderShipped:
			report.Breakdown.Processing = report.Breakdown.Processing.Add(o.TotalPrice)
		case entity.OrderPending:
			report.Breakdown.Pending = report.Breakdown.Pending.Add(o.TotalPrice)
		}
		if !o.Status.In(entity.OrderDelivered, entity.OrderCancelled) {
			report.PendingPayments++
		}
	}
	report.TotalRevenueLabel = format.Money(report.TotalRevenue)
	report.TopProducts = productRanking(uc.catalog.Batteries(), orders)
	return report
}

// ExportSellerPDF genera el PDF del reporte del vendedor y el nombre de archivo sugerido.
func (uc *RevenueUseCase) ExportSellerPDF(ctx context.Context, user entity.User, period string) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("revenue: %w: sin generador de PDF", domain.ErrExportUnavailable)
	}
	report := uc.Seller(period)
	issuedAt := uc.now()
	pdfBytes, err := uc.generator.GenerateRevenuePDF(ctx, report, user, issuedAt)
	if err != nil {
		return nil, "", fmt.Errorf("revenue: exportar pdf: %w", err)
	}
	filename := fmt.Sprintf("revenue-%s-%s.pdf", report.Period, issuedAt.Format("20060102"))
	return pdfBytes, filename, nil
}

// Manufacturer valor de los pedidos de la empresa del usuario, ranking de productos
// y valor del inventario.
func (uc *RevenueUseCase) Manufacturer(user entity.User) *dto.ManufacturerRevenueDTO {
	var own []entity.Order
	ordersValue := decimal.Zero
	for _, o := range uc.catalog.Orders() {
		if o.Manufacturer != user.Company {
			continue
		}
		own = append(own, o)
		ordersValue = ordersValue.Add(o.TotalPrice)
	}

	batteries := uc.catalog.Batteries()
	inventoryValue := decimal.Zero
	for _, b := range batteries {
		inventoryValue = inventoryValue.Add(b.StockValue())
	}

	return &dto.ManufacturerRevenueDTO{
		OrdersValue:         ordersValue,
		OrdersValueLabel:    format.Money(ordersValue),
		InventoryValue:      inventoryValue,
		InventoryValueLabel: format.Money(inventoryValue),
		TopProducts:         productRanking(batteries, own),
	}
}

// Logistics valor de la mercancía movida por el operador, agrupado por estado del envío.
// Solo cuentan los envíos cuyo pedido está asignado a la empresa del usuario.
func (uc *RevenueUseCase) Logistics(user entity.User) *dto.LogisticsRevenueDTO {
	byID := indexOrders(uc.catalog.Orders())

	statuses := []entity.ShipmentStatus{
		entity.ShipmentPickedUp,
		entity.ShipmentInTransit,
		entity.ShipmentOutForDelivery,
		entity.ShipmentDelivered,
	}
	groups := make(map[entity.ShipmentStatus]*dto.StatusValueDTO, len(statuses))
	out := &dto.LogisticsRevenueDTO{
		TotalValue: decimal.Zero,
		ByStatus:   make([]dto.StatusValueDTO, 0, len(statuses)),
	}
	for _, st := range statuses {
		groups[st] = &dto.StatusValueDTO{
			Status:      string(st),
			StatusLabel: format.StatusLabel(string(st)),
			Value:       decimal.Zero,
		}
	}

	for _, s := range uc.catalog.Shipments() {
		o, ok := byID[s.OrderID]
		if !ok || o.Logistics != user.Company {
			continue
		}
		g, ok := groups[s.Status]
		if !ok {
			continue
		}
		g.Shipments++
		g.Value = g.Value.Add(o.TotalPrice)
		out.TotalValue = out.TotalValue.Add(o.TotalPrice)
	}

	for _, st := range statuses {
		out.ByStatus = append(out.ByStatus, *groups[st])
	}
	out.TotalValueLabel = format.Money(out.TotalValue)
	return out
}

// productRanking ingreso, unidades y pedidos por batería, de mayor a menor ingreso.
// Las baterías sin pedidos quedan al final en el orden del catálogo.
func productRanking(batteries []entity.Battery, orders []entity.Order) []dto.ProductRevenueDTO {
	out := make([]dto.ProductRevenueDTO, 0, len(batteries))
	for _, b := range batteries {
		p := dto.ProductRevenueDTO{BatteryID: b.ID, Name: b.Name, Type: b.Type, Revenue: decimal.Zero}
		for _, o := range orders {
			if o.BatteryID != b.ID {
				continue
			}
			p.Revenue = p.Revenue.Add(o.TotalPrice)
			p.Quantity += o.Quantity
			p.OrderCount++
		}
		p.RevenueLabel = format.Money(p.Revenue)
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}
