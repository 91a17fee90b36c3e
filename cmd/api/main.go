package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/battery-supply-chain/internal/application/analytics"
	"github.com/jhoicas/battery-supply-chain/internal/application/inventory"
	"github.com/jhoicas/battery-supply-chain/internal/application/orders"
	"github.com/jhoicas/battery-supply-chain/internal/application/session"
	"github.com/jhoicas/battery-supply-chain/internal/application/usecase"
	infrapdf "github.com/jhoicas/battery-supply-chain/internal/infrastructure/pdf"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/sampledata"
	"github.com/jhoicas/battery-supply-chain/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/battery-supply-chain/internal/interfaces/http"
	"github.com/jhoicas/battery-supply-chain/pkg/config"
	"github.com/jhoicas/battery-supply-chain/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Session.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closeStorage, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de sesión")
	}
	defer closeStorage()

	store := session.NewStore(
		kv,
		sampledata.NewDirectory(),
		session.DemoPasswordVerifier(cfg.Session.DemoPassword),
		session.Config{
			StorageKey:  cfg.Session.StorageKey,
			LoginDelay:  cfg.Session.LoginDelay,
			GoogleDelay: cfg.Session.GoogleDelay,
		},
		log,
	)

	// Restaurar en segundo plano: mientras tanto las pantallas responden el placeholder.
	restoreCtx, cancelRestore := context.WithTimeout(ctx, 10*time.Second)
	go func() {
		defer cancelRestore()
		snap := store.Restore(restoreCtx)
		log.Info().Str("status", string(snap.Status)).Msg("sesión restaurada")
	}()

	catalog := sampledata.NewCatalog()
	pdfGenerator := infrapdf.NewMarotoRevenueReport()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.Docs.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerPath,
			Path:     "docs",
			Title:    "Battery Supply Chain API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "session": string(store.Snapshot().Status)})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     store,
		DashboardUC: analytics.NewDashboardUseCase(catalog),
		RevenueUC:   analytics.NewRevenueUseCase(catalog, pdfGenerator),
		InventoryUC: inventory.NewUseCase(catalog),
		OrdersUC:    orders.NewUseCase(catalog),
		ProfileUC:   usecase.NewProfileUseCase(),
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
