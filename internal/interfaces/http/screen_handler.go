package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/battery-supply-chain/internal/application/analytics"
	"github.com/jhoicas/battery-supply-chain/internal/application/dto"
	"github.com/jhoicas/battery-supply-chain/internal/application/guard"
	"github.com/jhoicas/battery-supply-chain/internal/application/inventory"
	"github.com/jhoicas/battery-supply-chain/internal/application/orders"
	"github.com/jhoicas/battery-supply-chain/internal/application/usecase"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
)

// ScreenHandler sirve las pantallas de los tres roles. Todas sus rutas van detrás de RequireSessionRole.
type ScreenHandler struct {
	dashboard *analytics.DashboardUseCase
	revenue   *analytics.RevenueUseCase
	inventory *inventory.UseCase
	orders    *orders.UseCase
	profile   *usecase.ProfileUseCase
	validate  *validator.Validate
}

// NewScreenHandler construye el handler de pantallas.
func NewScreenHandler(
	dashboard *analytics.DashboardUseCase,
	revenue *analytics.RevenueUseCase,
	inventoryUC *inventory.UseCase,
	ordersUC *orders.UseCase,
	profile *usecase.ProfileUseCase,
	validate *validator.Validate,
) *ScreenHandler {
	return &ScreenHandler{
		dashboard: dashboard,
		revenue:   revenue,
		inventory: inventoryUC,
		orders:    ordersUC,
		profile:   profile,
		validate:  validate,
	}
}

// Profile godoc
// @Summary      Perfil del usuario (sin sidebar)
// @Tags         screens
// @Produce      json
// @Success      200  {object}  dto.ScreenResponse
// @Router       /slr/profile [get]
// @Router       /mfr/profile [get]
// @Router       /lgt/profile [get]
func (h *ScreenHandler) Profile(c *fiber.Ctx) error {
	user := SessionUser(c)
	return h.screen(c, user.Role, "Profile", h.profile.Get(user))
}

// screen envuelve la pantalla con su ruta, título y sidebar (omitido donde el rol no lo muestra).
func (h *ScreenHandler) screen(c *fiber.Ctx, role entity.Role, title string, data interface{}) error {
	nav := NewNavigator(c)
	return c.JSON(dto.ScreenResponse{
		Path:    nav.CurrentPath(),
		Title:   title,
		Sidebar: guard.Chrome(nav, role),
		Data:    data,
	})
}

// bindQuery parsea y valida los query params. Si devuelve false la respuesta de error ya se escribió.
func (h *ScreenHandler) bindQuery(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.QueryParser(out); err != nil {
		return false, invalidQuery(c)
	}
	if err := h.validate.Struct(out); err != nil {
		return false, validationError(c, err)
	}
	return true, nil
}
