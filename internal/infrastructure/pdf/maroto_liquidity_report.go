// Package pdf implementa la generación del reporte de valuación de inventario
// en PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller  │  Fecha + ventana del reporte   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: valor vendido / valor en estantería / ratio        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Vendidas | Sin vender | % sin vender     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLiquidityReport genera el PDF del reporte de liquidez usando Maroto v2.
type MarotoLiquidityReport struct{}

// NewMarotoLiquidityReport construye el generador.
func NewMarotoLiquidityReport() *MarotoLiquidityReport { return &MarotoLiquidityReport{} }

// Generate produce el PDF del reporte y devuelve sus bytes.
func (g *MarotoLiquidityReport) Generate(
	_ context.Context,
	shopName string,
	generatedAt time.Time,
	report *dto.LiquidityReportDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de liquidez de inventario", true).
		WithAuthor(shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shopName, generatedAt, report.Window))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range categoryRows(report.Categories) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(shopName string, generatedAt time.Time, window string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Liquidez de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New("Ventana: "+windowLabel(window), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report *dto.LiquidityReportDTO) core.Row {
	return row.New(16).Add(
		col.New(4).Add(
			text.New("VALOR VENDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("$ "+report.SoldValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7,
			}),
		),
		col.New(4).Add(
			text.New("EN ESTANTERÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("$ "+report.UnsoldValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7,
			}),
		),
		col.New(4).Add(
			text.New("% SIN VENDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(report.UnsoldRatio.StringFixed(1)+" %", props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New("Categoría", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(2).Add(text.New("Vendidas", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New("Sin vender", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New("% sin vender", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
	)
}

func categoryRows(categories []dto.CategoryLiquidityDTO) []core.Row {
	rows := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(c.Category, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", c.SoldUnits), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", c.UnsoldUnits), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(c.UnsoldPct.StringFixed(1)+" %", props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func windowLabel(window string) string {
	switch window {
	case "today":
		return "hoy"
	case "7d":
		return "últimos 7 días"
	case "30d":
		return "últimos 30 días"
	default:
		return "todo el histórico"
	}
}
