package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

func itemInventario(id, name, category string, stock int, price int64) entity.InventoryItem {
	return entity.InventoryItem{
		ID:       id,
		ShopID:   "shop1",
		Name:     name,
		Category: category,
		Stock:    stock,
		Price:    decimal.NewFromInt(price),
	}
}

func venta(productID string, qty int, total int64, date time.Time) entity.Sale {
	return entity.Sale{
		ID:        productID + "-sale",
		ShopID:    "shop1",
		ProductID: productID,
		Qty:       qty,
		Total:     decimal.NewFromInt(total),
		Date:      date,
	}
}

func TestBuildLiquidityReport_ValoresBasicos(t *testing.T) {
	inventory := []entity.InventoryItem{
		itemInventario("p1", "Pantalla", "Repuestos", 10, 50), // 500 en estantería
		itemInventario("p2", "Funda", "Accesorios", 4, 25),    // 100 en estantería
	}
	sales := []entity.Sale{
		venta("p1", 2, 100, baseTime.Add(-time.Hour)),
		venta("p2", 1, 25, baseTime.Add(-2*time.Hour)),
	}

	report := analytics.BuildLiquidityReport(baseTime, analytics.WindowAll, "", sales, inventory)

	assert.Equal(t, "125", report.SoldValue.String())
	assert.Equal(t, "600", report.UnsoldValue.String())
	assert.Equal(t, "725", report.TotalValue.String())
	// 600 / 725 * 100 = 82.76
	assert.Equal(t, "82.76", report.UnsoldRatio.StringFixed(2))
}

// Sin inventario ni ventas el ratio es 0, no NaN ni división por cero.
func TestBuildLiquidityReport_TotalCeroRatioCero(t *testing.T) {
	report := analytics.BuildLiquidityReport(baseTime, analytics.WindowAll, "", nil, nil)

	assert.True(t, report.UnsoldRatio.IsZero())
	assert.True(t, report.TotalValue.IsZero())
	assert.Empty(t, report.Categories)
}

// Las ventanas acotan las ventas; el valor en estantería nunca se filtra por
// tiempo (el stock actual es el stock actual).
func TestBuildLiquidityReport_VentanaFiltraVentas(t *testing.T) {
	inventory := []entity.InventoryItem{itemInventario("p1", "Pantalla", "Repuestos", 5, 50)}
	sales := []entity.Sale{
		venta("p1", 1, 100, baseTime.Add(-time.Hour)),         // hoy
		venta("p1", 1, 200, baseTime.Add(-3*24*time.Hour)),    // hace 3 días
		venta("p1", 1, 400, baseTime.Add(-20*24*time.Hour)),   // hace 20 días
		venta("p1", 1, 800, baseTime.Add(-100*24*time.Hour)),  // hace 100 días
	}

	casos := []struct {
		window   analytics.Window
		expected string
	}{
		{analytics.WindowToday, "100"},
		{analytics.WindowLast7, "300"},
		{analytics.WindowLast30, "700"},
		{analytics.WindowAll, "1500"},
	}
	for _, tc := range casos {
		report := analytics.BuildLiquidityReport(baseTime, tc.window, "", sales, inventory)
		assert.Equal(t, tc.expected, report.SoldValue.String(), "ventana %s", tc.window)
		assert.Equal(t, "250", report.UnsoldValue.String(),
			"la estantería no depende de la ventana (%s)", tc.window)
	}
}

// Fechas malformadas (cero) quedan fuera de cualquier ventana acotada pero
// cuentan en "all". Nunca se lanza un error.
func TestBuildLiquidityReport_FechasMalformadas(t *testing.T) {
	sales := []entity.Sale{
		venta("p1", 1, 100, time.Time{}),
		venta("p1", 1, 50, baseTime.Add(-time.Hour)),
	}

	all := analytics.BuildLiquidityReport(baseTime, analytics.WindowAll, "", sales, nil)
	assert.Equal(t, "150", all.SoldValue.String(), "all incluye la fecha rota")

	hoy := analytics.BuildLiquidityReport(baseTime, analytics.WindowToday, "", sales, nil)
	assert.Equal(t, "50", hoy.SoldValue.String(), "today excluye la fecha rota")
}

// La búsqueda ignora mayúsculas y diacríticos: "baterias" encuentra "Baterías".
func TestBuildLiquidityReport_BusquedaSinDiacriticos(t *testing.T) {
	inventory := []entity.InventoryItem{
		itemInventario("p1", "Baterías Litio", "Energía", 3, 80),
		itemInventario("p2", "Funda", "Accesorios", 3, 10),
	}
	sales := []entity.Sale{
		venta("p1", 1, 80, baseTime.Add(-time.Hour)),
		venta("p2", 1, 10, baseTime.Add(-time.Hour)),
	}

	report := analytics.BuildLiquidityReport(baseTime, analytics.WindowAll, "baterias", sales, inventory)
	assert.Equal(t, "80", report.SoldValue.String(), "solo la venta de baterías pasa el filtro")

	// También matchea por nombre de cliente.
	conCliente := []entity.Sale{
		{ID: "s1", ShopID: "shop1", ProductID: "desconocido", Qty: 1,
			Total: decimal.NewFromInt(30), Customer: "José Pérez", Date: baseTime.Add(-time.Hour)},
	}
	report = analytics.BuildLiquidityReport(baseTime, analytics.WindowAll, "jose", conCliente, inventory)
	assert.Equal(t, "30", report.SoldValue.String())
}

func TestBuildLiquidityReport_DesglosePorCategoria(t *testing.T) {
	inventory := []entity.InventoryItem{
		itemInventario("p1", "Pantalla", "Repuestos", 8, 50),
		itemInventario("p2", "Funda", "Accesorios", 0, 10),
	}
	sales := []entity.Sale{
		venta("p1", 2, 100, baseTime.Add(-time.Hour)),
	}

	report := analytics.BuildLiquidityReport(baseTime, analytics.WindowAll, "", sales, inventory)

	require.Len(t, report.Categories, 2)
	repuestos := report.Categories[0]
	assert.Equal(t, "Repuestos", repuestos.Category)
	assert.Equal(t, 2, repuestos.SoldUnits)
	assert.Equal(t, 8, repuestos.UnsoldUnits)
	assert.Equal(t, "80.00", repuestos.UnsoldPct.StringFixed(2), "8/(8+2)*100")

	accesorios := report.Categories[1]
	assert.Equal(t, 0, accesorios.SoldUnits)
	assert.Equal(t, 0, accesorios.UnsoldUnits)
	assert.True(t, accesorios.UnsoldPct.IsZero(), "0/0 es 0, no NaN")
}
