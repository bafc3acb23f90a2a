package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Riesgo ────────────────────────────────────────────────────────────────────

// RiskEntryDTO una cuenta con al menos una regla de riesgo disparada.
// Las cuentas sin reglas disparadas no aparecen en la lista (no hay
// registros "riesgo cero").
type RiskEntryDTO struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Score             int      `json:"score"`
	Level             string   `json:"level"`   // HIGH | MEDIUM | LOW
	Trigger           string   `json:"trigger"` // primera regla disparada, en orden de evaluación
	SecondaryTriggers []string `json:"secondary_triggers"`
	LastSeen          string   `json:"last_seen"` // RFC3339 de la última actividad, o "Unknown"
}

// ── Funnel / ciclo de vida ────────────────────────────────────────────────────

// FunnelStageDTO un bucket del funnel de suscripción.
// Los buckets NO son particiones excluyentes: una cuenta puede contarse en
// varios a la vez. Es una simplificación de display heredada del producto,
// no un modelo de conversión real.
type FunnelStageDTO struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// LifecycleCountsDTO contadores de ciclo de vida de cuentas.
type LifecycleCountsDTO struct {
	SignupsToday    int `json:"signups_today"`
	SignupsThisWeek int `json:"signups_this_week"`
	Active          int `json:"active"`
	Expired         int `json:"expired"`
	HighValue       int `json:"high_value"` // plan gold o wallet > 100
	AtRisk          int `json:"at_risk"`    // activas con menos de 3 filas de actividad
}

// FunnelReportDTO respuesta de GET /api/analytics/funnel.
type FunnelReportDTO struct {
	Stages    []FunnelStageDTO   `json:"stages"`
	Lifecycle LifecycleCountsDTO `json:"lifecycle"`
}

// ── Ingresos ──────────────────────────────────────────────────────────────────

// RevenueReportDTO respuesta de GET /api/analytics/revenue.
// GrowthPct y ChurnPct son constantes de presentación suministradas
// externamente, no derivadas de datos.
type RevenueReportDTO struct {
	MRR            decimal.Decimal `json:"mrr"`
	ARR            decimal.Decimal `json:"arr"`
	ARPU           decimal.Decimal `json:"arpu"`
	ActiveAccounts int             `json:"active_accounts"`
	GrowthPct      decimal.Decimal `json:"growth_pct"`
	ChurnPct       decimal.Decimal `json:"churn_pct"`
}

// ── Liquidez de inventario ────────────────────────────────────────────────────

// CategoryLiquidityDTO desglose sold/unsold por categoría.
type CategoryLiquidityDTO struct {
	Category    string          `json:"category"`
	SoldUnits   int             `json:"sold_units"`   // unidades vendidas en la ventana filtrada
	UnsoldUnits int             `json:"unsold_units"` // stock actual de la categoría
	UnsoldPct   decimal.Decimal `json:"unsold_pct"`   // unsold / (unsold + sold) * 100
}

// LiquidityReportDTO respuesta de GET /api/analytics/liquidity.
type LiquidityReportDTO struct {
	Window      string                 `json:"window"`
	Query       string                 `json:"query,omitempty"`
	SoldValue   decimal.Decimal        `json:"sold_value"`   // suma de sale.total filtrado
	UnsoldValue decimal.Decimal        `json:"unsold_value"` // precio * stock de todo el inventario actual
	TotalValue  decimal.Decimal        `json:"total_value"`
	UnsoldRatio decimal.Decimal        `json:"unsold_ratio"` // 0–100; 0 si el total es 0
	Categories  []CategoryLiquidityDTO `json:"categories"`
}

// ── Stock muerto ──────────────────────────────────────────────────────────────

// DeadStockItemDTO ítem con capital estancado. Solo se listan ítems fuera de
// OPTIMAL, ordenados por días sin venta descendente.
type DeadStockItemDTO struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Stock         int       `json:"stock"`
	LastSaleDate  time.Time `json:"last_sale_date"` // última venta, o createdAt si nunca se vendió
	DaysSinceSale int       `json:"days_since_sale"`
	Status        string    `json:"status"` // SLOW | AT RISK | DEAD
}

// ── Reposición ────────────────────────────────────────────────────────────────

// RestockSuggestionDTO proyección de agotamiento por ítem (ventana fija de 30
// días). Solo se listan ítems fuera de HEALTHY, ordenados por urgencia.
type RestockSuggestionDTO struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Stock         int     `json:"stock"`
	UnitsSold30d  int     `json:"units_sold_30d"`
	AvgDailySales float64 `json:"avg_daily_sales"`
	EstDaysLeft   int     `json:"est_days_left"` // 999 = sin ventas en la ventana (estable)
	Status        string  `json:"status"`        // CRITICAL | LOW
}
