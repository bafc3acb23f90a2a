package analytics

import (
	"sort"
	"time"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// Estados de stock muerto. Un ítem cae en exactamente uno según los días sin
// venta contra los cortes 30/60/90.
const (
	StockDead    = "DEAD"
	StockAtRisk  = "AT RISK"
	StockSlow    = "SLOW"
	StockOptimal = "OPTIMAL"
)

const (
	deadDays   = 90
	atRiskDays = 60
	slowDays   = 30
)

// BuildDeadStockReport clasifica por estancamiento cada ítem con stock
// disponible. La fecha de referencia es la última venta del ítem o, si nunca
// se vendió, su fecha de alta. Los ítems OPTIMAL no se listan; el resultado
// va del más estancado al menos.
func BuildDeadStockReport(
	now time.Time,
	inventory []entity.InventoryItem,
	sales []entity.Sale,
) []dto.DeadStockItemDTO {

	lastSaleByProduct := make(map[string]time.Time)
	for _, s := range sales {
		if s.Date.IsZero() {
			continue
		}
		if s.Date.After(lastSaleByProduct[s.ProductID]) {
			lastSaleByProduct[s.ProductID] = s.Date
		}
	}

	out := make([]dto.DeadStockItemDTO, 0)
	for _, it := range inventory {
		if it.Stock <= 0 {
			continue
		}
		lastSale := lastSaleByProduct[it.ID]
		if lastSale.IsZero() {
			lastSale = it.CreatedAt
		}
		if lastSale.IsZero() {
			// Sin venta y sin fecha de alta: no hay referencia de estancamiento.
			continue
		}

		days := int(now.Sub(lastSale).Hours() / 24)
		status := stagnancyStatus(days)
		if status == StockOptimal {
			continue
		}

		out = append(out, dto.DeadStockItemDTO{
			ProductID:     it.ID,
			Name:          it.Name,
			Category:      it.Category,
			Stock:         it.Stock,
			LastSaleDate:  lastSale,
			DaysSinceSale: days,
			Status:        status,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysSinceSale > out[j].DaysSinceSale
	})
	return out
}

func stagnancyStatus(daysSinceSale int) string {
	switch {
	case daysSinceSale >= deadDays:
		return StockDead
	case daysSinceSale >= atRiskDays:
		return StockAtRisk
	case daysSinceSale >= slowDays:
		return StockSlow
	default:
		return StockOptimal
	}
}
