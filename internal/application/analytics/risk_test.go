package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var baseTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func cuentaUsuario(id, name string) entity.User {
	return entity.User{
		ID:     id,
		Email:  name + "@taller.test",
		Name:   name,
		Role:   entity.RoleUser,
		Status: entity.StatusActive,
		PlanID: entity.PlanStarter,
	}
}

func logins(userID string, n int, ts time.Time) []entity.ActivityLog {
	out := make([]entity.ActivityLog, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.ActivityLog{
			ID:         userID + "-login",
			UserID:     userID,
			ActionType: entity.ActionUserLogin,
			Timestamp:  ts,
		})
	}
	return out
}

func solicitudesDenegadas(shopID string, n int) []entity.PlanRequest {
	out := make([]entity.PlanRequest, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.PlanRequest{ShopID: shopID, Status: entity.PlanRequestDenied})
	}
	return out
}

func quejas(userID, userName string, n int) []entity.SupportTicket {
	out := make([]entity.SupportTicket, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.SupportTicket{UserID: userID, UserName: userName})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas individuales y acumulación de score
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cuenta que dispara las cinco reglas → score 130, nivel HIGH, y el
// trigger principal es la primera regla en orden de evaluación.
func TestBuildRiskReport_CincoReglas_ScoreCompleto(t *testing.T) {
	u := cuentaUsuario("u1", "Taller Norte")
	u.Status = entity.StatusExpired
	u.PlanID = entity.PlanGold

	report := analytics.BuildRiskReport(
		[]entity.User{u},
		logins("u1", 11, baseTime),
		quejas("u1", "", 3),
		solicitudesDenegadas("u1", 3),
		nil, // sin reparaciones → Paid Account Stagnancy dispara
	)

	require.Len(t, report, 1)
	e := report[0]
	assert.Equal(t, 130, e.Score, "20+40+30+15+25")
	assert.Equal(t, analytics.RiskHigh, e.Level)
	assert.Equal(t, analytics.TriggerLoginVolatility, e.Trigger,
		"el trigger principal debe ser la primera regla disparada")
	assert.Equal(t, []string{
		analytics.TriggerPaymentFriction,
		analytics.TriggerSupportSaturation,
		analytics.TriggerPaidStagnancy,
		analytics.TriggerExpiredActivity,
	}, e.SecondaryTriggers)
}

// Caso 2: una sola regla de fricción de pago (peso 40) queda en MEDIUM,
// nunca en HIGH.
func TestBuildRiskReport_FriccionDePagoSola_EsMedium(t *testing.T) {
	u := cuentaUsuario("u1", "Taller Sur")

	report := analytics.BuildRiskReport(
		[]entity.User{u}, nil, nil, solicitudesDenegadas("u1", 3), nil,
	)

	require.Len(t, report, 1)
	assert.Equal(t, 40, report[0].Score)
	assert.Equal(t, analytics.RiskMedium, report[0].Level)
	assert.Equal(t, analytics.TriggerPaymentFriction, report[0].Trigger)
	assert.Empty(t, report[0].SecondaryTriggers)
}

// Caso 3: los cortes de nivel son estrictos: 60 exacto es MEDIUM y 30 exacto
// es LOW.
func TestBuildRiskReport_CortesEstrictos(t *testing.T) {
	// 20 (logins) + 40 (pagos) = 60 → MEDIUM
	u60 := cuentaUsuario("u60", "Corte Sesenta")
	report := analytics.BuildRiskReport(
		[]entity.User{u60},
		logins("u60", 11, baseTime),
		nil,
		solicitudesDenegadas("u60", 3),
		nil,
	)
	require.Len(t, report, 1)
	assert.Equal(t, 60, report[0].Score)
	assert.Equal(t, analytics.RiskMedium, report[0].Level, "60 exacto no es HIGH")

	// 30 (soporte) → LOW
	u30 := cuentaUsuario("u30", "Corte Treinta")
	report = analytics.BuildRiskReport(
		[]entity.User{u30}, nil, quejas("u30", "", 3), nil, nil,
	)
	require.Len(t, report, 1)
	assert.Equal(t, 30, report[0].Score)
	assert.Equal(t, analytics.RiskLow, report[0].Level, "30 exacto no es MEDIUM")
}

// Caso 4: los umbrales de cada regla son estrictos (> y no >=): 10 logins,
// 2 denegadas y 2 quejas no disparan nada.
func TestBuildRiskReport_UmbralExactoNoDispara(t *testing.T) {
	u := cuentaUsuario("u1", "Justo En El Borde")

	report := analytics.BuildRiskReport(
		[]entity.User{u},
		logins("u1", 10, baseTime),
		quejas("u1", "", 2),
		solicitudesDenegadas("u1", 2),
		nil,
	)

	assert.Empty(t, report, "cuentas sin reglas disparadas no aparecen")
}

// Caso 5: las cuentas de staff nunca se escanean, aunque disparen todo.
func TestBuildRiskReport_StaffExcluido(t *testing.T) {
	admin := cuentaUsuario("a1", "Admin Plataforma")
	admin.Role = entity.RoleAdmin
	superAdmin := cuentaUsuario("a2", "Root")
	superAdmin.Role = entity.RoleSuperAdmin

	report := analytics.BuildRiskReport(
		[]entity.User{admin, superAdmin},
		append(logins("a1", 20, baseTime), logins("a2", 20, baseTime)...),
		nil,
		append(solicitudesDenegadas("a1", 5), solicitudesDenegadas("a2", 5)...),
		nil,
	)

	assert.Empty(t, report)
}

// ──────────────────────────────────────────────────────────────────────────────
// Quejas por ID o nombre
// ──────────────────────────────────────────────────────────────────────────────

// Un ticket que referencia a la cuenta por ID y nombre a la vez cuenta una
// sola vez; los registros históricos solo por nombre también suman.
func TestBuildRiskReport_QuejasPorIDONombre_SinDobleConteo(t *testing.T) {
	u := cuentaUsuario("u1", "Taller Centro")

	tickets := []entity.SupportTicket{
		{UserID: "u1", UserName: "Taller Centro"}, // ambos → 1
		{UserID: "u1"},                            // solo ID → 1
		{UserName: "Taller Centro"},               // solo nombre → 1
	}

	report := analytics.BuildRiskReport([]entity.User{u}, nil, tickets, nil, nil)

	require.Len(t, report, 1, "3 quejas > umbral 2 debe disparar saturación")
	assert.Equal(t, analytics.TriggerSupportSaturation, report[0].Trigger)

	// Con doble conteo serían 4; con 2 reales no dispara.
	report = analytics.BuildRiskReport([]entity.User{u}, nil, tickets[:2], nil, nil)
	assert.Empty(t, report, "2 quejas no superan el umbral")
}

// ──────────────────────────────────────────────────────────────────────────────
// LastSeen y orden
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildRiskReport_LastSeen(t *testing.T) {
	u := cuentaUsuario("u1", "Con Actividad")
	report := analytics.BuildRiskReport(
		[]entity.User{u}, logins("u1", 11, baseTime), nil, nil, nil,
	)
	require.Len(t, report, 1)
	assert.Equal(t, baseTime.Format(time.RFC3339), report[0].LastSeen)

	// Timestamps malformados (cero) no aportan recencia → Unknown.
	u2 := cuentaUsuario("u2", "Fechas Rotas")
	report = analytics.BuildRiskReport(
		[]entity.User{u2}, logins("u2", 11, time.Time{}), nil, nil, nil,
	)
	require.Len(t, report, 1)
	assert.Equal(t, "Unknown", report[0].LastSeen)
}

func TestBuildRiskReport_OrdenPorScoreDescendente(t *testing.T) {
	low := cuentaUsuario("u1", "Bajo")
	high := cuentaUsuario("u2", "Alto")
	high.Status = entity.StatusExpired

	report := analytics.BuildRiskReport(
		[]entity.User{low, high},
		append(logins("u1", 11, baseTime), logins("u2", 11, baseTime)...),
		nil,
		solicitudesDenegadas("u2", 3),
		nil,
	)

	require.Len(t, report, 2)
	assert.Equal(t, "Alto", report[0].Name, "la cuenta con más score va primero")
	assert.GreaterOrEqual(t, report[0].Score, report[1].Score)
}
