package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// ManufacturerDashboard GET /mfr
func (h *ScreenHandler) ManufacturerDashboard(c *fiber.Ctx) error {
	return h.screen(c, entity.RoleManufacturer, "Manufacturer Dashboard", h.dashboard.Manufacturer(SessionUser(c)))
}

// ManufacturerInventory GET /mfr/inv?q=&status=&location=
func (h *ScreenHandler) ManufacturerInventory(c *fiber.Ctx) error {
	var req dto.ManufacturerInventoryRequest
	if ok, err := h.bindQuery(c, &req); !ok {
		return err
	}
	return h.screen(c, entity.RoleManufacturer, "Inventory", h.inventory.Manufacturer(req))
}

// ManufacturerOrders GET /mfr/orders?status=all|received|accepted|in_transit|more_info
func (h *ScreenHandler) ManufacturerOrders(c *fiber.Ctx) error {
	var req dto.ManufacturerOrdersRequest
	if ok, err := h.bindQuery(c, &req); !ok {
		return err
	}
	return h.screen(c, entity.RoleManufacturer, "Orders", h.orders.Manufacturer(req))
}

// ManufacturerRevenue GET /mfr/revenue
func (h *ScreenHandler) ManufacturerRevenue(c *fiber.Ctx) error {
	return h.screen(c, entity.RoleManufacturer, "Revenue", h.revenue.Manufacturer(SessionUser(c)))
}
