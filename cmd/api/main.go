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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/application/auth"
	"github.com/tu-usuario/tallerpro-api/internal/application/inventory"
	"github.com/tu-usuario/tallerpro-api/internal/application/pos"
	"github.com/tu-usuario/tallerpro-api/internal/application/refresh"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/excel"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/metrics"
	infrapdf "github.com/tu-usuario/tallerpro-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/tallerpro-api/internal/interfaces/http"
	"github.com/tu-usuario/tallerpro-api/pkg/config"
	"github.com/tu-usuario/tallerpro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	repairRepo := postgres.NewRepairRepository(pool)
	ticketRepo := postgres.NewSupportTicketRepository(pool)
	planRequestRepo := postgres.NewPlanRequestRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	walletRepo := postgres.NewWalletTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	analyticsDeps := analytics.Deps{
		Users:        userRepo,
		Plans:        planRepo,
		Sales:        saleRepo,
		Inventory:    inventoryRepo,
		Repairs:      repairRepo,
		Tickets:      ticketRepo,
		PlanRequests: planRequestRepo,
		Activity:     activityRepo,
	}
	analyticsSvc := analytics.NewService(analyticsDeps)
	dashboardUC := analytics.NewDashboardUseCase(analyticsDeps, walletRepo)
	registerSaleUC := pos.NewRegisterSaleUseCase(txRunner)
	inventoryUC := inventory.NewUseCase(inventoryRepo)
	authUC := auth.NewAuthUseCase(userRepo, activityRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Scheduler de refresco: recalcula el resumen cada N segundos y ante
	// invalidaciones (p.ej. una venta POS).
	var scheduler *refresh.Scheduler
	if cfg.Refresh.Enabled {
		refreshMetrics := metrics.NewRefreshMetrics(registry)
		scheduler = refresh.NewScheduler(dashboardUC, cfg.Refresh.Interval, log, refreshMetrics)
		go scheduler.Run(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TallerPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		RegisterUC:  registerSaleUC,
		Analytics:   analyticsSvc,
		DashboardUC: dashboardUC,
		Scheduler:   scheduler,
		Excel:       excel.NewStockAlertsExporter(),
		PDF:         infrapdf.NewMarotoLiquidityReport(),
		Registry:    registry,
		JWTSecret:   cfg.JWT.Secret,
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
	stop() // detiene el scheduler

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
