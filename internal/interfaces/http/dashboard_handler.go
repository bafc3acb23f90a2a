package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/application/refresh"
)

// DashboardHandler sirve el resumen combinado del dashboard.
// Primero intenta el snapshot cacheado del scheduler; si aún no hay ninguno
// (arranque en frío o scheduler deshabilitado) computa en línea.
type DashboardHandler struct {
	scheduler *refresh.Scheduler // opcional
	uc        *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler. scheduler puede ser nil.
func NewDashboardHandler(scheduler *refresh.Scheduler, uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{scheduler: scheduler, uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard (seis motores + contadores del día)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	if h.scheduler != nil {
		if summary := h.scheduler.Latest(); summary != nil {
			return c.JSON(summary)
		}
	}
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
