package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

var planesDePrueba = []entity.Plan{
	{ID: entity.PlanStarter, Name: "Starter", Price: decimal.Zero},
	{ID: entity.PlanPremium, Name: "Premium", Price: decimal.NewFromInt(50)},
	{ID: entity.PlanGold, Name: "Gold", Price: decimal.NewFromInt(120)},
}

func TestBuildRevenueReport_SoloActivasSuman(t *testing.T) {
	activa := cuentaUsuario("u1", "Activa")
	activa.PlanID = entity.PlanGold

	expirada := cuentaUsuario("u2", "Expirada")
	expirada.PlanID = entity.PlanGold
	expirada.Status = entity.StatusExpired

	pendiente := cuentaUsuario("u3", "Pendiente")
	pendiente.PlanID = entity.PlanPremium
	pendiente.Status = entity.StatusPending

	report := analytics.BuildRevenueReport(
		[]entity.User{activa, expirada, pendiente}, planesDePrueba,
	)

	assert.True(t, report.MRR.Equal(decimal.NewFromInt(120)),
		"solo la cuenta activa aporta al MRR, got %s", report.MRR)
	assert.True(t, report.ARR.Equal(decimal.NewFromInt(1440)), "ARR = MRR * 12")
	assert.Equal(t, 1, report.ActiveAccounts)
}

// Un PlanID desconocido o vacío aporta 0, nunca rompe el cómputo.
func TestBuildRevenueReport_PlanDesconocidoAportaCero(t *testing.T) {
	fantasma := cuentaUsuario("u1", "Plan Fantasma")
	fantasma.PlanID = "plan-eliminado"

	gold := cuentaUsuario("u2", "Gold")
	gold.PlanID = entity.PlanGold

	report := analytics.BuildRevenueReport([]entity.User{fantasma, gold}, planesDePrueba)

	assert.True(t, report.MRR.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 2, report.ActiveAccounts,
		"la cuenta con plan desconocido sigue siendo activa")
	assert.True(t, report.ARPU.Equal(decimal.NewFromInt(60)), "120 / 2 cuentas")
}

// Sin cuentas activas el ARPU es 0: nunca división por cero.
func TestBuildRevenueReport_SinActivasArpuCero(t *testing.T) {
	expirada := cuentaUsuario("u1", "Expirada")
	expirada.Status = entity.StatusExpired

	report := analytics.BuildRevenueReport([]entity.User{expirada}, planesDePrueba)

	assert.True(t, report.MRR.IsZero())
	assert.True(t, report.ARR.IsZero())
	assert.True(t, report.ARPU.IsZero())
	assert.Equal(t, 0, report.ActiveAccounts)
}

func TestBuildRevenueReport_ArpuRedondeaADosDecimales(t *testing.T) {
	a := cuentaUsuario("u1", "A")
	a.PlanID = entity.PlanPremium // 50
	b := cuentaUsuario("u2", "B")
	b.PlanID = entity.PlanGold // 120
	c := cuentaUsuario("u3", "C")
	c.PlanID = entity.PlanStarter // 0

	report := analytics.BuildRevenueReport([]entity.User{a, b, c}, planesDePrueba)

	// 170 / 3 = 56.666... → 56.67
	assert.Equal(t, "56.67", report.ARPU.StringFixed(2))
}

// Growth y churn son constantes de presentación, no derivadas de datos.
func TestBuildRevenueReport_ConstantesDeDisplay(t *testing.T) {
	report := analytics.BuildRevenueReport(nil, nil)

	assert.Equal(t, "4.2", report.GrowthPct.String())
	assert.Equal(t, "1.8", report.ChurnPct.String())
}
