package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// LogisticsDashboard GET /lgt
func (h *ScreenHandler) LogisticsDashboard(c *fiber.Ctx) error {
	return h.screen(c, entity.RoleLogistics, "Logistics Dashboard", h.dashboard.Logistics(SessionUser(c)))
}

// LogisticsCargo GET /lgt/inv
func (h *ScreenHandler) LogisticsCargo(c *fiber.Ctx) error {
	return h.screen(c, entity.RoleLogistics, "Cargo", h.inventory.Cargo(SessionUser(c)))
}

// LogisticsOrders GET /lgt/orders
func (h *ScreenHandler) LogisticsOrders(c *fiber.Ctx) error {
	return h.screen(c, entity.RoleLogistics, "Orders", h.orders.Logistics(SessionUser(c)))
}

// LogisticsRevenue GET /lgt/revenue
func (h *ScreenHandler) LogisticsRevenue(c *fiber.Ctx) error {
	return h.screen(c, entity.RoleLogistics, "Revenue", h.revenue.Logistics(SessionUser(c)))
}
