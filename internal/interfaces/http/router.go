package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/battery-supply-chain/internal/application/analytics"
	"github.com/jhoicas/battery-supply-chain/internal/application/inventory"
	"github.com/jhoicas/battery-supply-chain/internal/application/orders"
	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/application/usecase"
	"github.com/jhoicas/battery-supply-chain/internal/domain/entity"
	"github.com/jhoicas/battery-supply-chain/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     *session.Store
	DashboardUC *analytics.DashboardUseCase
	RevenueUC   *analytics.RevenueUseCase
	InventoryUC *inventory.UseCase
	OrdersUC    *orders.UseCase
	ProfileUC   *usecase.ProfileUseCase
	Log         *logger.Logger
}

// Router registra los middlewares comunes, la API de sesión y las pantallas de cada rol.
func Router(app *fiber.App, deps RouterDeps) {
	validate := validator.New()
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	log := deps.Log.Named("http")

	app.Use(RequestID())
	app.Use(AccessLog(log))
	app.Use(Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Login y API de sesión (público)
	sessionHandler := NewSessionHandler(deps.Session, validate)
	app.Get("/", sessionHandler.LoginScreen)

	api := app.Group("/api/session")
	api.Get("/", sessionHandler.Get)
	api.Post("/login", sessionHandler.Login)
	api.Post("/google", sessionHandler.Google)
	api.Post("/logout", sessionHandler.Logout)

	screens := NewScreenHandler(deps.DashboardUC, deps.RevenueUC, deps.InventoryUC, deps.OrdersUC, deps.ProfileUC, validate)

	// Vendedor
	slr := app.Group("/slr", RequireSessionRole(deps.Session, entity.RoleSeller, log))
	slr.Get("/", screens.SellerDashboard)
	slr.Get("/inv", screens.SellerInventory)
	slr.Get("/orders", screens.SellerOrders)
	slr.Get("/revenue", screens.SellerRevenue)
	slr.Get("/revenue/report.pdf", screens.SellerRevenuePDF)
	slr.Get("/profile", screens.Profile)

	// Fabricante
	mfr := app.Group("/mfr", RequireSessionRole(deps.Session, entity.RoleManufacturer, log))
	mfr.Get("/", screens.ManufacturerDashboard)
	mfr.Get("/inv", screens.ManufacturerInventory)
	mfr.Get("/orders", screens.ManufacturerOrders)
	mfr.Get("/revenue", screens.ManufacturerRevenue)
	mfr.Get("/profile", screens.Profile)

	// Logística
	lgt := app.Group("/lgt", RequireSessionRole(deps.Session, entity.RoleLogistics, log))
	lgt.Get("/", screens.LogisticsDashboard)
	lgt.Get("/inv", screens.LogisticsCargo)
	lgt.Get("/orders", screens.LogisticsOrders)
	lgt.Get("/revenue", screens.LogisticsRevenue)
	lgt.Get("/profile", screens.Profile)
}
