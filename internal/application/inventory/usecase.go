// Package inventory contiene los casos de uso de las pantallas de inventario:
// catálogo del vendedor, stock del fabricante y carga en tránsito del operador.
package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
	"github.com/jhoicas/battery-supply-chain/pkg/format"
)

// FilterAll valor de filtro que no restringe.
const FilterAll = "all"

// Locations almacenes del fabricante, asignados por posición en el catálogo.
var Locations = []string{"Mumbai", "Bangalore", "Delhi", "Chennai", "Pune"}

const (
	contactBase = 9000000000
	contactStep = 111111
)

// UseCase consultas de inventario sobre el catálogo.
type UseCase struct {
	catalog repository.CatalogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalog repository.CatalogRepository) *UseCase {
	return &UseCase{catalog: catalog}
}

// Seller inventario del vendedor. Los contadores cubren todo el catálogo; la lista
// se filtra por nombre o tipo (sin distinguir mayúsculas).
func (uc *UseCase) Seller(req dto.SellerInventoryRequest) *dto.SellerInventoryDTO {
	batteries := uc.catalog.Batteries()
	q := strings.ToLower(strings.TrimSpace(req.Query))

	out := &dto.SellerInventoryDTO{
		TotalItems: len(batteries),
		Query:      req.Query,
		Items:      make([]dto.BatteryDTO, 0, len(batteries)),
	}
	for _, b := range batteries {
		switch b.Status {
		case entity.StockAvailable:
			out.Available++
		case entity.StockLow:
			out.LowStock++
		}
		if contains(q, b.Name, b.Type) {
			out.Items = append(out.Items, dto.ToBatteryDTO(b))
		}
	}
	return out
}

// Manufacturer inventario del fabricante con ubicación y contacto por batería.
// Los totales cubren todo el catálogo; la lista aplica búsqueda, estado y ubicación.
func (uc *UseCase) Manufacturer(req dto.ManufacturerInventoryRequest) *dto.ManufacturerInventoryDTO {
	batteries := uc.catalog.Batteries()
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if req.Status == "" {
		req.Status = FilterAll
	}
	if req.Location == "" {
		req.Location = FilterAll
	}

	out := &dto.ManufacturerInventoryDTO{
		TotalValue: decimal.Zero,
		Locations:  append([]string(nil), Locations...),
		Filters:    req,
		Items:      make([]dto.BatteryDTO, 0, len(batteries)),
	}
	for i, b := range batteries {
		out.TotalUnits += b.Stock
		out.TotalValue = out.TotalValue.Add(b.StockValue())
		switch b.Status {
		case entity.StockLow:
			out.LowStock++
		case entity.StockOutOfStock:
			out.OutOfStock++
		}

		item := dto.ToBatteryDTO(b)
		item.Location = Locations[i%len(Locations)]
		item.Contact = fmt.Sprintf("+91 %d", contactBase+i*contactStep)

		if !contains(q, b.Name, b.Type, item.Location) {
			continue
		}
		if req.Status != FilterAll && string(b.Status) != req.Status {
			continue
		}
		if req.Location != FilterAll && item.Location != req.Location {
			continue
		}
		out.Items = append(out.Items, item)
	}
	out.TotalValueLabel = format.Money(out.TotalValue)
	return out
}

// Cargo mercancía que el operador tiene en su poder: envíos no entregados de pedidos
// asignados a su empresa.
func (uc *UseCase) Cargo(user entity.User) *dto.LogisticsCargoDTO {
	byID := make(map[string]entity.Order)
	for _, o := range uc.catalog.Orders() {
		byID[o.ID] = o
	}

	out := &dto.LogisticsCargoDTO{Items: make([]dto.CargoDTO, 0)}
	for _, s := range uc.catalog.Shipments() {
		if s.Status == entity.ShipmentDelivered {
			continue
		}
		o, ok := byID[s.OrderID]
		if !ok || o.Logistics != user.Company {
			continue
		}
		out.TotalUnits += o.Quantity
		out.Items = append(out.Items, dto.CargoDTO{
			ShipmentID:      s.ID,
			OrderID:         o.ID,
			BatteryName:     o.BatteryName,
			Quantity:        o.Quantity,
			Status:          string(s.Status),
			StatusLabel:     format.StatusLabel(string(s.Status)),
			CurrentLocation: s.CurrentLocation,
		})
	}
	return out
}

// contains indica si q (ya en minúsculas) aparece en alguno de los campos. q vacío coincide siempre.
func contains(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
