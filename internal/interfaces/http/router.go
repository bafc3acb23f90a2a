// Package http contiene los handlers Fiber y el router de la API.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/application/auth"
	"github.com/tu-usuario/tallerpro-api/internal/application/inventory"
	"github.com/tu-usuario/tallerpro-api/internal/application/pos"
	"github.com/tu-usuario/tallerpro-api/internal/application/refresh"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/excel"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.UseCase
	RegisterUC  *pos.RegisterSaleUseCase
	Analytics   *analytics.Service
	DashboardUC *analytics.DashboardUseCase
	Scheduler   *refresh.Scheduler // opcional
	Excel       *excel.StockAlertsExporter
	PDF         *pdf.MarotoLiquidityReport
	Registry    *prometheus.Registry // opcional; habilita GET /metrics
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Métricas Prometheus (sin auth; se asume red interna)
	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}),
		))
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventory (protegido, acotado al taller del token)
	inventoryGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventoryGroup.Post("/", inventoryHandler.Create)
	inventoryGroup.Get("/", inventoryHandler.List)
	inventoryGroup.Get("/:id", inventoryHandler.GetByID)
	inventoryGroup.Put("/:id", inventoryHandler.Update)
	inventoryGroup.Delete("/:id", inventoryHandler.Delete)

	// POS (protegido)
	posGroup := protected.Group("/pos")
	posHandler := NewPOSHandler(deps.RegisterUC, deps.Scheduler)
	posGroup.Post("/sales", posHandler.RegisterSale)

	// Analytics por taller (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.Analytics)
	analyticsGroup.Get("/liquidity", analyticsHandler.Liquidity)
	analyticsGroup.Get("/dead-stock", analyticsHandler.DeadStock)
	analyticsGroup.Get("/restock", analyticsHandler.Restock)

	// Analytics cross-tenant (solo staff de la plataforma)
	staff := analyticsGroup.Group("/", RequireStaff())
	staff.Get("/risk", analyticsHandler.Risk)
	staff.Get("/funnel", analyticsHandler.Funnel)
	staff.Get("/revenue", analyticsHandler.Revenue)

	// Dashboard (solo staff: combina datos de toda la plataforma)
	dashboardGroup := protected.Group("/dashboard", RequireStaff())
	dashboardHandler := NewDashboardHandler(deps.Scheduler, deps.DashboardUC)
	dashboardGroup.Get("/summary", dashboardHandler.Summary)

	// Exports (protegido, por taller)
	exportsGroup := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.Analytics, deps.Excel, deps.PDF)
	exportsGroup.Get("/stock-alerts.xlsx", exportHandler.StockAlertsXLSX)
	exportsGroup.Get("/liquidity.pdf", exportHandler.LiquidityPDF)
}
