package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// Growth y churn del dashboard son placeholders de presentación del producto:
// no se derivan de datos, se sirven como constantes.
var (
	displayGrowthPct = decimal.NewFromFloat(4.2)
	displayChurnPct  = decimal.NewFromFloat(1.8)
)

const monthsPerYear = 12

// BuildRevenueReport calcula MRR, ARR y ARPU sobre las cuentas activas.
// Un plan no encontrado aporta precio 0; sin cuentas activas el ARPU es 0
// (nunca división por cero).
func BuildRevenueReport(users []entity.User, plans []entity.Plan) dto.RevenueReportDTO {
	priceByPlan := make(map[string]decimal.Decimal, len(plans))
	for _, p := range plans {
		priceByPlan[p.ID] = p.Price
	}

	mrr := decimal.Zero
	active := 0
	for _, u := range users {
		if u.Status != entity.StatusActive {
			continue
		}
		active++
		mrr = mrr.Add(priceByPlan[u.PlanID]) // plan desconocido o vacío = 0
	}

	arpu := decimal.Zero
	if active > 0 {
		arpu = mrr.Div(decimal.NewFromInt(int64(active))).Round(2)
	}

	return dto.RevenueReportDTO{
		MRR:            mrr.Round(2),
		ARR:            mrr.Mul(decimal.NewFromInt(monthsPerYear)).Round(2),
		ARPU:           arpu,
		ActiveAccounts: active,
		GrowthPct:      displayGrowthPct,
		ChurnPct:       displayChurnPct,
	}
}
