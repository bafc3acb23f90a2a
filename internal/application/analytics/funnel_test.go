package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

func stageCount(t *testing.T, report dto.FunnelReportDTO, stage string) int {
	t.Helper()
	for _, s := range report.Stages {
		if s.Stage == stage {
			return s.Count
		}
	}
	t.Fatalf("bucket %q no encontrado", stage)
	return 0
}

// Una misma cuenta puede caer en varios buckets a la vez: expirada con plan de
// pago cuenta en Trial → Paid, Active → Expired y Cancelled.
func TestBuildFunnelReport_BucketsNoExcluyentes(t *testing.T) {
	u := cuentaUsuario("u1", "Multi Bucket")
	u.PlanID = entity.PlanGold
	u.Status = entity.StatusExpired

	report := analytics.BuildFunnelReport(baseTime, []entity.User{u}, nil, nil)

	assert.Equal(t, 1, stageCount(t, report, analytics.StageTrialToPaid))
	assert.Equal(t, 1, stageCount(t, report, analytics.StageActiveToExpired))
	assert.Equal(t, 1, stageCount(t, report, analytics.StageCancelled))
	assert.Equal(t, 0, stageCount(t, report, analytics.StageExpiredRenewed))
}

// Expired → Renewed exige cuenta activa con al menos una solicitud aprobada.
func TestBuildFunnelReport_RenovadasRequierenAprobacion(t *testing.T) {
	renovada := cuentaUsuario("u1", "Renovada")
	sinAprobar := cuentaUsuario("u2", "Sin Aprobar")

	report := analytics.BuildFunnelReport(
		baseTime,
		[]entity.User{renovada, sinAprobar},
		[]entity.PlanRequest{{ShopID: "u1", Status: entity.PlanRequestApproved}},
		nil,
	)

	assert.Equal(t, 1, stageCount(t, report, analytics.StageExpiredRenewed))
}

func TestBuildFunnelReport_Lifecycle(t *testing.T) {
	hoy := cuentaUsuario("u1", "Alta Hoy")
	hoy.CreatedAt = baseTime.Add(-2 * time.Hour)

	estaSemana := cuentaUsuario("u2", "Alta Semana")
	estaSemana.CreatedAt = baseTime.Add(-3 * 24 * time.Hour)

	antigua := cuentaUsuario("u3", "Antigua")
	antigua.CreatedAt = baseTime.Add(-60 * 24 * time.Hour)

	expirada := cuentaUsuario("u4", "Expirada")
	expirada.Status = entity.StatusExpired

	report := analytics.BuildFunnelReport(
		baseTime,
		[]entity.User{hoy, estaSemana, antigua, expirada},
		nil,
		nil,
	)

	life := report.Lifecycle
	assert.Equal(t, 1, life.SignupsToday)
	assert.Equal(t, 2, life.SignupsThisWeek, "las de hoy también cuentan en la semana")
	assert.Equal(t, 3, life.Active)
	assert.Equal(t, 1, life.Expired)
}

// Alto valor: plan gold o wallet > 100 estricto (100.00 exacto no cuenta).
func TestBuildFunnelReport_HighValue(t *testing.T) {
	gold := cuentaUsuario("u1", "Gold")
	gold.PlanID = entity.PlanGold

	walletAlta := cuentaUsuario("u2", "Billetera Grande")
	walletAlta.WalletBalance = decimal.NewFromFloat(100.01)

	walletJusta := cuentaUsuario("u3", "Billetera Justa")
	walletJusta.WalletBalance = decimal.NewFromInt(100)

	report := analytics.BuildFunnelReport(
		baseTime,
		[]entity.User{gold, walletAlta, walletJusta},
		nil,
		nil,
	)

	assert.Equal(t, 2, report.Lifecycle.HighValue, "100 exacto no es alto valor")
}

// En riesgo: activa con menos de 3 filas de actividad (3 exactas ya no).
func TestBuildFunnelReport_AtRisk(t *testing.T) {
	dormida := cuentaUsuario("u1", "Dormida")
	despierta := cuentaUsuario("u2", "Despierta")

	report := analytics.BuildFunnelReport(
		baseTime,
		[]entity.User{dormida, despierta},
		nil,
		logins("u2", 3, baseTime),
	)

	assert.Equal(t, 1, report.Lifecycle.AtRisk, "solo la cuenta con < 3 filas")
}

func TestBuildFunnelReport_StaffNoCuenta(t *testing.T) {
	admin := cuentaUsuario("a1", "Admin")
	admin.Role = entity.RoleAdmin
	admin.PlanID = entity.PlanGold
	admin.CreatedAt = baseTime

	report := analytics.BuildFunnelReport(baseTime, []entity.User{admin}, nil, nil)

	require.NotNil(t, report.Stages)
	for _, s := range report.Stages {
		assert.Zero(t, s.Count, "staff no cuenta en el bucket %s", s.Stage)
	}
	assert.Zero(t, report.Lifecycle.SignupsToday)
	assert.Zero(t, report.Lifecycle.HighValue)
}
