package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Combina la salida de los seis motores de analítica sobre un mismo snapshot,
// más contadores operativos del día. La produce el scheduler de refresco y se
// sirve cacheada; GeneratedAt indica la frescura del cómputo.
type DashboardSummaryDTO struct {
	GeneratedAt time.Time `json:"generated_at"`

	Revenue   RevenueReportDTO       `json:"revenue"`
	Funnel    FunnelReportDTO        `json:"funnel"`
	Risk      []RiskEntryDTO         `json:"risk"`
	Liquidity LiquidityReportDTO     `json:"liquidity"`
	DeadStock []DeadStockItemDTO     `json:"dead_stock"`
	Restock   []RestockSuggestionDTO `json:"restock"`

	// Contadores operativos del día
	WalletVolumeToday decimal.Decimal `json:"wallet_volume_today"`
	OpenTickets       int             `json:"open_tickets"`
	PendingRepairs    int             `json:"pending_repairs"`
}
