package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
)

// AnalyticsHandler expone los seis motores de analítica.
// Risk, Funnel y Revenue son cross-tenant (solo staff); Liquidity, DeadStock
// y Restock operan sobre los datos del taller del token.
type AnalyticsHandler struct {
	svc *analytics.Service
}

// NewAnalyticsHandler construye el handler de analítica.
func NewAnalyticsHandler(svc *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Risk godoc
// @Summary      Cuentas en riesgo (ordenadas por score desc)
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   dto.RiskEntryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/analytics/risk [get]
func (h *AnalyticsHandler) Risk(c *fiber.Ctx) error {
	entries, err := h.svc.RiskReport(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(entries)
}

// Funnel godoc
// @Summary      Funnel de suscripción y contadores de ciclo de vida
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.FunnelReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/analytics/funnel [get]
func (h *AnalyticsHandler) Funnel(c *fiber.Ctx) error {
	report, err := h.svc.FunnelReport(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(report)
}

// Revenue godoc
// @Summary      MRR, ARR y ARPU de la plataforma
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.RevenueReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/analytics/revenue [get]
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	report, err := h.svc.RevenueReport(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(report)
}

// Liquidity godoc
// @Summary      Liquidez del inventario del taller
// @Tags         analytics
// @Produce      json
// @Param        window  query  string  false  "today | 7d | 30d | all (default all)"
// @Param        q       query  string  false  "filtro por nombre de producto o cliente"
// @Success      200  {object}  dto.LiquidityReportDTO
// @Router       /api/analytics/liquidity [get]
func (h *AnalyticsHandler) Liquidity(c *fiber.Ctx) error {
	window := parseWindow(c.Query("window"))
	report, err := h.svc.LiquidityReport(c.Context(), GetShopID(c), window, c.Query("q"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(report)
}

// DeadStock godoc
// @Summary      Ítems con capital estancado (SLOW / AT RISK / DEAD)
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  dto.DeadStockItemDTO
// @Router       /api/analytics/dead-stock [get]
func (h *AnalyticsHandler) DeadStock(c *fiber.Ctx) error {
	items, err := h.svc.DeadStockReport(c.Context(), GetShopID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Restock godoc
// @Summary      Sugerencias de reposición (CRITICAL / LOW)
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  dto.RestockSuggestionDTO
// @Router       /api/analytics/restock [get]
func (h *AnalyticsHandler) Restock(c *fiber.Ctx) error {
	items, err := h.svc.RestockReport(c.Context(), GetShopID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// parseWindow normaliza el query param a una ventana válida; cualquier valor
// desconocido cae en "all".
func parseWindow(s string) analytics.Window {
	switch analytics.Window(s) {
	case analytics.WindowToday, analytics.WindowLast7, analytics.WindowLast30:
		return analytics.Window(s)
	default:
		return analytics.WindowAll
	}
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
