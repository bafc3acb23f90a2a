package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// Estados de reposición.
const (
	RestockCritical = "CRITICAL"
	RestockLow      = "LOW"
	RestockHealthy  = "HEALTHY"
)

const (
	restockWindowDays    = 30  // ventana fija de velocidad de venta
	restockStableDays    = 999 // sentinela: sin ventas en la ventana
	criticalDaysLeft     = 3
	lowDaysLeft          = 7
	lowStockFloor        = 5 // stock < 5 fuerza LOW aunque la velocidad sea 0
)

// BuildRestockReport proyecta el agotamiento de cada ítem con la velocidad de
// venta de los últimos 30 días. Los ítems HEALTHY no se listan; el resultado
// va del más urgente al menos (días restantes ascendente).
func BuildRestockReport(
	now time.Time,
	inventory []entity.InventoryItem,
	sales []entity.Sale,
) []dto.RestockSuggestionDTO {

	cutoff := now.Add(-restockWindowDays * 24 * time.Hour)
	soldByProduct := make(map[string]int)
	for _, s := range sales {
		if s.Date.IsZero() || s.Date.Before(cutoff) {
			continue
		}
		soldByProduct[s.ProductID] += s.Qty
	}

	out := make([]dto.RestockSuggestionDTO, 0)
	for _, it := range inventory {
		unitsSold := soldByProduct[it.ID]
		avgDaily := float64(unitsSold) / restockWindowDays

		estDaysLeft := restockStableDays
		if avgDaily > 0 {
			estDaysLeft = int(math.Floor(float64(it.Stock) / avgDaily))
		}

		status := depletionStatus(estDaysLeft, it.Stock)
		if status == RestockHealthy {
			continue
		}

		out = append(out, dto.RestockSuggestionDTO{
			ProductID:     it.ID,
			Name:          it.Name,
			Stock:         it.Stock,
			UnitsSold30d:  unitsSold,
			AvgDailySales: avgDaily,
			EstDaysLeft:   estDaysLeft,
			Status:        status,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstDaysLeft < out[j].EstDaysLeft
	})
	return out
}

func depletionStatus(estDaysLeft, stock int) string {
	switch {
	case estDaysLeft <= criticalDaysLeft:
		return RestockCritical
	case estDaysLeft <= lowDaysLeft || stock < lowStockFloor:
		return RestockLow
	default:
		return RestockHealthy
	}
}
