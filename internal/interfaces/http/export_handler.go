package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/excel"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/pdf"
)

// ExportHandler genera los descargables: alertas de stock en XLSX y el
// reporte de liquidez en PDF, siempre sobre los datos del taller del token.
type ExportHandler struct {
	svc   *analytics.Service
	excel *excel.StockAlertsExporter
	pdf   *pdf.MarotoLiquidityReport
}

// NewExportHandler construye el handler de exports.
func NewExportHandler(svc *analytics.Service, xlsx *excel.StockAlertsExporter, report *pdf.MarotoLiquidityReport) *ExportHandler {
	return &ExportHandler{svc: svc, excel: xlsx, pdf: report}
}

// StockAlertsXLSX godoc
// @Summary      Exportar stock muerto y reposición (XLSX)
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exports/stock-alerts.xlsx [get]
func (h *ExportHandler) StockAlertsXLSX(c *fiber.Ctx) error {
	shopID := GetShopID(c)
	deadStock, err := h.svc.DeadStockReport(c.Context(), shopID)
	if err != nil {
		return internalError(c, err)
	}
	restock, err := h.svc.RestockReport(c.Context(), shopID)
	if err != nil {
		return internalError(c, err)
	}
	payload, err := h.excel.Export(deadStock, restock)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, attachment("alertas-stock", "xlsx"))
	return c.Send(payload)
}

// LiquidityPDF godoc
// @Summary      Exportar reporte de liquidez (PDF)
// @Tags         exports
// @Produce      application/pdf
// @Param        window  query  string  false  "today | 7d | 30d | all (default all)"
// @Param        q       query  string  false  "filtro por nombre de producto o cliente"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/exports/liquidity.pdf [get]
func (h *ExportHandler) LiquidityPDF(c *fiber.Ctx) error {
	window := parseWindow(c.Query("window"))
	report, err := h.svc.LiquidityReport(c.Context(), GetShopID(c), window, c.Query("q"))
	if err != nil {
		return internalError(c, err)
	}
	payload, err := h.pdf.Generate(c.Context(), shopDisplayName(c), time.Now(), report)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment("liquidez", "pdf"))
	return c.Send(payload)
}

// shopDisplayName arma un título para el documento; el nombre real del taller
// no viaja en el token, así que se usa el identificador.
func shopDisplayName(c *fiber.Ctx) string {
	return "Taller " + GetShopID(c)
}

func attachment(base, ext string) string {
	return fmt.Sprintf(`attachment; filename="%s-%s.%s"`, base, time.Now().Format("20060102"), ext)
}
