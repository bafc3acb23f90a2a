// Package analytics contiene los motores de analítica derivada de la
// plataforma: clasificación de riesgo por cuenta, funnel de suscripción,
// ingresos recurrentes, liquidez de inventario, stock muerto y reposición.
//
// Todos los motores son funciones puras sobre un snapshot en memoria de las
// colecciones de dominio: sin estado compartido, sin I/O, y con el reloj
// inyectado como parámetro para que los tests puedan fijarlo.
package analytics

import (
	"sort"
	"time"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// Niveles de severidad.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

// Etiquetas de las reglas, en orden de evaluación. La primera regla disparada
// es el trigger principal; las siguientes quedan como secundarios.
const (
	TriggerLoginVolatility   = "Login Volatility Detected"
	TriggerPaymentFriction   = "Chronic Payment Friction"
	TriggerSupportSaturation = "Support Desk Saturation"
	TriggerPaidStagnancy     = "Paid Account Stagnancy"
	TriggerExpiredActivity   = "Expired Node Activity"
)

// Pesos fijos por regla. La escala hace que una sola regla de fricción de
// pago (40) quede en MEDIUM y no en HIGH: los cortes son estrictos (>60, >30).
const (
	weightLoginVolatility   = 20
	weightPaymentFriction   = 40
	weightSupportSaturation = 30
	weightPaidStagnancy     = 15
	weightExpiredActivity   = 25
)

// Umbrales de las reglas.
const (
	loginVolatilityThreshold  = 10 // logins > 10
	deniedRequestsThreshold   = 2  // solicitudes denegadas > 2
	complaintsThreshold       = 2  // quejas > 2
	lastSeenUnknown           = "Unknown"
)

// BuildRiskReport evalúa las cinco reglas heurísticas por cuenta y devuelve
// una entrada por cada cuenta con al menos una regla disparada. Las cuentas
// de staff de plataforma (ADMIN, SUPER_ADMIN) nunca se escanean.
func BuildRiskReport(
	users []entity.User,
	activity []entity.ActivityLog,
	complaints []entity.SupportTicket,
	planRequests []entity.PlanRequest,
	repairs []entity.Repair,
) []dto.RiskEntryDTO {

	// Índices por cuenta para no re-escanear las colecciones por usuario.
	type activityStats struct {
		total    int
		logins   int
		lastSeen time.Time
	}
	actByUser := make(map[string]*activityStats, len(users))
	for _, a := range activity {
		st := actByUser[a.UserID]
		if st == nil {
			st = &activityStats{}
			actByUser[a.UserID] = st
		}
		st.total++
		if a.ActionType == entity.ActionUserLogin {
			st.logins++
		}
		// Timestamps malformados (cero) no cuentan para lastSeen.
		if !a.Timestamp.IsZero() && a.Timestamp.After(st.lastSeen) {
			st.lastSeen = a.Timestamp
		}
	}

	deniedByShop := make(map[string]int)
	for _, pr := range planRequests {
		if pr.Status == entity.PlanRequestDenied {
			deniedByShop[pr.ShopID]++
		}
	}

	// Una queja referencia a la cuenta por ID o por nombre; si trae ambos se
	// cuenta una sola vez (de ahí el índice de pares).
	complaintsByID := make(map[string]int)
	complaintsByName := make(map[string]int)
	complaintsByBoth := make(map[[2]string]int)
	for _, t := range complaints {
		if t.UserID != "" {
			complaintsByID[t.UserID]++
		}
		if t.UserName != "" {
			complaintsByName[t.UserName]++
		}
		if t.UserID != "" && t.UserName != "" {
			complaintsByBoth[[2]string{t.UserID, t.UserName}]++
		}
	}

	// Las reparaciones se atribuyen por nombre de cliente: join frágil heredado
	// del producto (colisiones de nombre sobre- o sub-cuentan).
	repairsByName := make(map[string]int)
	for _, r := range repairs {
		if r.CustomerName != "" {
			repairsByName[r.CustomerName]++
		}
	}

	entries := make([]dto.RiskEntryDTO, 0)
	for _, u := range users {
		if entity.IsPlatformStaff(u.Role) {
			continue
		}

		var st activityStats
		if s := actByUser[u.ID]; s != nil {
			st = *s
		}

		score := 0
		var triggered []string

		if st.logins > loginVolatilityThreshold {
			score += weightLoginVolatility
			triggered = append(triggered, TriggerLoginVolatility)
		}
		if deniedByShop[u.ID] > deniedRequestsThreshold {
			score += weightPaymentFriction
			triggered = append(triggered, TriggerPaymentFriction)
		}
		complaintCount := complaintsByID[u.ID] + complaintsByName[u.Name] - complaintsByBoth[[2]string{u.ID, u.Name}]
		if complaintCount > complaintsThreshold {
			score += weightSupportSaturation
			triggered = append(triggered, TriggerSupportSaturation)
		}
		if u.PlanID != "" && u.PlanID != entity.PlanStarter && repairsByName[u.Name] == 0 {
			score += weightPaidStagnancy
			triggered = append(triggered, TriggerPaidStagnancy)
		}
		if u.Status == entity.StatusExpired && st.total > 0 {
			score += weightExpiredActivity
			triggered = append(triggered, TriggerExpiredActivity)
		}

		if len(triggered) == 0 {
			continue
		}

		lastSeen := lastSeenUnknown
		if !st.lastSeen.IsZero() {
			lastSeen = st.lastSeen.Format(time.RFC3339)
		}

		entries = append(entries, dto.RiskEntryDTO{
			Name:              u.Name,
			Email:             u.Email,
			Score:             score,
			Level:             riskLevel(score),
			Trigger:           triggered[0],
			SecondaryTriggers: triggered[1:],
			LastSeen:          lastSeen,
		})
	}

	// Las cuentas más riesgosas primero; empate estable por orden de entrada.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// riskLevel aplica los cortes estrictos de severidad: un score de exactamente
// 60 es MEDIUM y uno de exactamente 30 es LOW.
func riskLevel(score int) string {
	switch {
	case score > 60:
		return RiskHigh
	case score > 30:
		return RiskMedium
	default:
		return RiskLow
	}
}
