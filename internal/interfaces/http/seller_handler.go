package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/domain"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// SellerDashboard GET /slr
func (h *ScreenHandler) SellerDashboard(c *fiber.Ctx) error {
	return h.screen(c, entity.RoleSeller, "Seller Dashboard", h.dashboard.Seller(SessionUser(c)))
}

// SellerInventory GET /slr/inv?q=
func (h *ScreenHandler) SellerInventory(c *fiber.Ctx) error {
	var req dto.SellerInventoryRequest
	if ok, err := h.bindQuery(c, &req); !ok {
		return err
	}
	return h.screen(c, entity.RoleSeller, "Inventory", h.inventory.Seller(req))
}

// SellerOrders GET /slr/orders?tab=source|received
func (h *ScreenHandler) SellerOrders(c *fiber.Ctx) error {
	var req dto.SellerOrdersRequest
	if ok, err := h.bindQuery(c, &req); !ok {
		return err
	}
	return h.screen(c, entity.RoleSeller, "Orders", h.orders.Seller(req))
}

// SellerRevenue GET /slr/revenue?period=week|month|year
func (h *ScreenHandler) SellerRevenue(c *fiber.Ctx) error {
	var req dto.RevenueRequest
	if ok, err := h.bindQuery(c, &req); !ok {
		return err
	}
	return h.screen(c, entity.RoleSeller, "Revenue", h.revenue.Seller(req.Period))
}

// SellerRevenuePDF godoc
// @Summary      Exportar el reporte de ingresos en PDF
// @Tags         screens
// @Produce      application/pdf
// @Param        period  query  string  false  "week, month, year"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /slr/revenue/report.pdf [get]
func (h *ScreenHandler) SellerRevenuePDF(c *fiber.Ctx) error {
	var req dto.RevenueRequest
	if ok, err := h.bindQuery(c, &req); !ok {
		return err
	}
	pdfBytes, filename, err := h.revenue.ExportSellerPDF(c.UserContext(), SessionUser(c), req.Period)
	if err != nil {
		if errors.Is(err, domain.ErrExportUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "EXPORT_UNAVAILABLE", Message: "la exportación a PDF no está habilitada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
