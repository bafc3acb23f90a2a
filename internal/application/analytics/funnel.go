package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// Nombres de los buckets del funnel, en el orden en que los muestra el
// dashboard. No son particiones excluyentes (ver FunnelStageDTO).
const (
	StageTrialToPaid     = "Trial → Paid"
	StageActiveToExpired = "Active → Expired"
	StageExpiredRenewed  = "Expired → Renewed"
	StageCancelled       = "Cancelled"
)

const atRiskActivityThreshold = 3 // activas con menos de 3 filas de actividad

var highValueWallet = decimal.NewFromInt(100)

// BuildFunnelReport calcula los cuatro buckets del funnel de suscripción y los
// contadores de ciclo de vida sobre el mismo snapshot. El staff de plataforma
// no cuenta en ningún bucket.
func BuildFunnelReport(
	now time.Time,
	users []entity.User,
	planRequests []entity.PlanRequest,
	activity []entity.ActivityLog,
) dto.FunnelReportDTO {

	approvedByShop := make(map[string]bool)
	for _, pr := range planRequests {
		if pr.Status == entity.PlanRequestApproved {
			approvedByShop[pr.ShopID] = true
		}
	}

	activityByUser := make(map[string]int)
	for _, a := range activity {
		activityByUser[a.UserID]++
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-7 * 24 * time.Hour)

	var trialToPaid, activeToExpired, expiredRenewed, cancelled int
	var life dto.LifecycleCountsDTO

	for _, u := range users {
		if entity.IsPlatformStaff(u.Role) {
			continue
		}

		// Buckets (una cuenta puede caer en varios)
		if u.PlanID != "" && u.PlanID != entity.PlanStarter {
			trialToPaid++
		}
		if u.Status == entity.StatusExpired {
			activeToExpired++
		}
		if u.Status == entity.StatusActive && approvedByShop[u.ID] {
			expiredRenewed++
		}
		if u.Status == entity.StatusPending || u.Status == entity.StatusExpired {
			cancelled++
		}

		// Ciclo de vida
		if !u.CreatedAt.IsZero() {
			if !u.CreatedAt.Before(dayStart) {
				life.SignupsToday++
			}
			if !u.CreatedAt.Before(weekStart) {
				life.SignupsThisWeek++
			}
		}
		switch u.Status {
		case entity.StatusActive:
			life.Active++
			if activityByUser[u.ID] < atRiskActivityThreshold {
				life.AtRisk++
			}
		case entity.StatusExpired:
			life.Expired++
		}
		if u.PlanID == entity.PlanGold || u.WalletBalance.GreaterThan(highValueWallet) {
			life.HighValue++
		}
	}

	return dto.FunnelReportDTO{
		Stages: []dto.FunnelStageDTO{
			{Stage: StageTrialToPaid, Count: trialToPaid},
			{Stage: StageActiveToExpired, Count: activeToExpired},
			{Stage: StageExpiredRenewed, Count: expiredRenewed},
			{Stage: StageCancelled, Count: cancelled},
		},
		Lifecycle: life,
	}
}
