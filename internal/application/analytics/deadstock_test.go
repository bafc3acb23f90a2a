package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

func diasAtras(n int) time.Time {
	return baseTime.Add(-time.Duration(n) * 24 * time.Hour)
}

// Los cortes de estancamiento son inclusivos: 30 días ya es SLOW, 60 AT RISK
// y 90 DEAD; 29 sigue OPTIMAL y no se lista.
func TestBuildDeadStockReport_CortesDeEstado(t *testing.T) {
	inventory := []entity.InventoryItem{
		itemInventario("p29", "Optimo", "A", 1, 10),
		itemInventario("p30", "Lento", "A", 1, 10),
		itemInventario("p60", "En Riesgo", "A", 1, 10),
		itemInventario("p90", "Muerto", "A", 1, 10),
	}
	sales := []entity.Sale{
		venta("p29", 1, 10, diasAtras(29)),
		venta("p30", 1, 10, diasAtras(30)),
		venta("p60", 1, 10, diasAtras(60)),
		venta("p90", 1, 10, diasAtras(90)),
	}

	report := analytics.BuildDeadStockReport(baseTime, inventory, sales)

	require.Len(t, report, 3, "OPTIMAL no se lista")
	// Orden: más estancado primero.
	assert.Equal(t, "Muerto", report[0].Name)
	assert.Equal(t, analytics.StockDead, report[0].Status)
	assert.Equal(t, 90, report[0].DaysSinceSale)
	assert.Equal(t, analytics.StockAtRisk, report[1].Status)
	assert.Equal(t, analytics.StockSlow, report[2].Status)
}

// Sin stock no hay capital estancado: los ítems agotados no se listan por
// viejos que sean.
func TestBuildDeadStockReport_SinStockNoSeLista(t *testing.T) {
	inventory := []entity.InventoryItem{
		itemInventario("p1", "Agotado", "A", 0, 10),
	}
	sales := []entity.Sale{venta("p1", 1, 10, diasAtras(200))}

	report := analytics.BuildDeadStockReport(baseTime, inventory, sales)
	assert.Empty(t, report)
}

// Un ítem nunca vendido usa su fecha de alta como referencia.
func TestBuildDeadStockReport_NuncaVendidoUsaAlta(t *testing.T) {
	it := itemInventario("p1", "Nunca Vendido", "A", 5, 10)
	it.CreatedAt = diasAtras(100)

	report := analytics.BuildDeadStockReport(baseTime, []entity.InventoryItem{it}, nil)

	require.Len(t, report, 1)
	assert.Equal(t, analytics.StockDead, report[0].Status)
	assert.Equal(t, 100, report[0].DaysSinceSale)
	assert.Equal(t, it.CreatedAt, report[0].LastSaleDate)
}

// Sin venta y sin fecha de alta no hay referencia: el ítem se omite en lugar
// de clasificarse con una fecha inventada.
func TestBuildDeadStockReport_SinReferenciaSeOmite(t *testing.T) {
	it := itemInventario("p1", "Sin Fechas", "A", 5, 10)

	report := analytics.BuildDeadStockReport(baseTime, []entity.InventoryItem{it}, nil)
	assert.Empty(t, report)
}

// Las ventas con fecha malformada no mueven la referencia de última venta.
func TestBuildDeadStockReport_VentaConFechaRotaNoRefresca(t *testing.T) {
	it := itemInventario("p1", "Viejo", "A", 2, 10)
	it.CreatedAt = diasAtras(120)
	sales := []entity.Sale{venta("p1", 1, 10, time.Time{})}

	report := analytics.BuildDeadStockReport(baseTime, []entity.InventoryItem{it}, sales)

	require.Len(t, report, 1)
	assert.Equal(t, analytics.StockDead, report[0].Status,
		"la venta sin fecha no cuenta como venta reciente")
}

func TestBuildDeadStockReport_UsaUltimaVenta(t *testing.T) {
	it := itemInventario("p1", "Con Historial", "A", 2, 10)
	sales := []entity.Sale{
		venta("p1", 1, 10, diasAtras(200)),
		venta("p1", 1, 10, diasAtras(45)), // la más reciente manda
	}

	report := analytics.BuildDeadStockReport(baseTime, []entity.InventoryItem{it}, sales)

	require.Len(t, report, 1)
	assert.Equal(t, 45, report[0].DaysSinceSale)
	assert.Equal(t, analytics.StockSlow, report[0].Status)
}
