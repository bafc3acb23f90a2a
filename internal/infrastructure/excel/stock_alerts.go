// Package excel genera los exports XLSX de alertas de stock: una hoja con el
// stock muerto y otra con las sugerencias de reposición, listas para que el
// dueño del taller las revise fuera de la app.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
)

const (
	sheetDeadStock = "Stock Muerto"
	sheetRestock   = "Reposición"
)

// StockAlertsExporter arma el libro XLSX de alertas de stock.
type StockAlertsExporter struct{}

// NewStockAlertsExporter construye el exportador.
func NewStockAlertsExporter() *StockAlertsExporter { return &StockAlertsExporter{} }

// Export genera el libro con ambas hojas y devuelve sus bytes.
func (e *StockAlertsExporter) Export(deadStock []dto.DeadStockItemDTO, restock []dto.RestockSuggestionDTO) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetDeadStock)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetRestock); err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := writeDeadStockSheet(f, deadStock); err != nil {
		return nil, err
	}
	if err := writeRestockSheet(f, restock); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDeadStockSheet(f *excelize.File, items []dto.DeadStockItemDTO) error {
	header := []string{"Producto", "Categoría", "Stock", "Última venta", "Días sin venta", "Estado"}
	if err := writeHeader(f, sheetDeadStock, header); err != nil {
		return err
	}
	for r, it := range items {
		row := r + 2
		lastSale := ""
		if !it.LastSaleDate.IsZero() {
			lastSale = it.LastSaleDate.Format("2006-01-02")
		}
		values := []any{it.Name, it.Category, it.Stock, lastSale, it.DaysSinceSale, it.Status}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheetDeadStock, cell, v)
		}
	}
	_ = f.SetColWidth(sheetDeadStock, "A", "A", 28)
	_ = f.SetColWidth(sheetDeadStock, "B", "B", 18)
	_ = f.SetColWidth(sheetDeadStock, "C", "F", 14)
	return nil
}

func writeRestockSheet(f *excelize.File, items []dto.RestockSuggestionDTO) error {
	header := []string{"Producto", "Stock", "Vendidos 30d", "Prom. diario", "Días restantes", "Estado"}
	if err := writeHeader(f, sheetRestock, header); err != nil {
		return err
	}
	for r, it := range items {
		row := r + 2
		values := []any{it.Name, it.Stock, it.UnitsSold30d, it.AvgDailySales, it.EstDaysLeft, it.Status}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheetRestock, cell, v)
		}
	}
	_ = f.SetColWidth(sheetRestock, "A", "A", 28)
	_ = f.SetColWidth(sheetRestock, "B", "F", 14)
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []string) error {
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: escribir header: %w", err)
		}
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	_ = f.SetCellStyle(sheet, "A1", last, style)
	return nil
}
