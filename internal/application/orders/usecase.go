// Package orders contiene los casos de uso de las pantallas de pedidos de cada rol.
package orders

import (
	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/internal/domain/repository"
)

// Pestañas y filtros de pedidos.
const (
	TabSource   = "source"
	TabReceived = "received"

	FilterAll       = "all"
	FilterReceived  = "received"
	FilterAccepted  = "accepted"
	FilterInTransit = "in_transit"
	FilterMoreInfo  = "more_info"
)

// UseCase consultas de pedidos sobre el catálogo.
type UseCase struct {
	catalog repository.CatalogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalog repository.CatalogRepository) *UseCase {
	return &UseCase{catalog: catalog}
}

// Seller pedidos del vendedor. source: aceptados (processing, shipped, delivered);
// received: pendientes de acción (pending). Tab vacío equivale a source.
func (uc *UseCase) Seller(req dto.SellerOrdersRequest) *dto.SellerOrdersDTO {
	if req.Tab == "" {
		req.Tab = TabSource
	}
	all := uc.catalog.Orders()

	out := &dto.SellerOrdersDTO{Tab: req.Tab, TotalOrders: len(all)}
	var current []entity.Order
	for _, o := range all {
		if o.Status.In(entity.OrderPending, entity.OrderProcessing, entity.OrderShipped) {
			out.ActiveOrders++
		}
		if o.Status == entity.OrderDelivered {
			out.CompletedOrders++
		}
		if sellerTab(o.Status) == req.Tab {
			current = append(current, o)
		}
	}
	out.Items = dto.ToOrderDTOs(current)
	return out
}

func sellerTab(s entity.OrderStatus) string {
	switch s {
	case entity.OrderProcessing, entity.OrderShipped, entity.OrderDelivered:
		return TabSource
	case entity.OrderPending:
		return TabReceived
	}
	return ""
}

// Manufacturer pedidos del fabricante con contadores por pestaña. Status vacío equivale a all.
func (uc *UseCase) Manufacturer(req dto.ManufacturerOrdersRequest) *dto.ManufacturerOrdersDTO {
	if req.Status == "" {
		req.Status = FilterAll
	}
	all := uc.catalog.Orders()

	out := &dto.ManufacturerOrdersDTO{Filter: req.Status, Received: len(all)}
	var current []entity.Order
	for _, o := range all {
		if o.Status.In(entity.OrderProcessing, entity.OrderShipped, entity.OrderDelivered) {
			out.Accepted++
		}
		if o.Status == entity.OrderShipped {
			out.InTransit++
		}
		if o.Status == entity.OrderPending {
			out.NeedsInfo++
		}
		if matchesManufacturerFilter(o.Status, req.Status) {
			current = append(current, o)
		}
	}
	out.Items = dto.ToOrderDTOs(current)
	return out
}

func matchesManufacturerFilter(s entity.OrderStatus, filter string) bool {
	switch filter {
	case FilterAccepted:
		return s.In(entity.OrderProcessing, entity.OrderShipped, entity.OrderDelivered)
	case FilterInTransit:
		return s == entity.OrderShipped
	case FilterMoreInfo:
		return s == entity.OrderPending
	}
	// all y received muestran todos los pedidos
	return true
}

// Logistics pedidos asignados a la empresa logística del usuario.
func (uc *UseCase) Logistics(user entity.User) *dto.LogisticsOrdersDTO {
	var assigned []entity.Order
	for _, o := range uc.catalog.Orders() {
		if o.Logistics != "" && o.Logistics == user.Company {
			assigned = append(assigned, o)
		}
	}
	return &dto.LogisticsOrdersDTO{Provider: user.Company, Items: dto.ToOrderDTOs(assigned)}
}
