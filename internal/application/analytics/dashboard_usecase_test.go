package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tallerpro-api/internal/application/analytics"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/memory"
)

func depsDesdeStore(store *memory.Store) analytics.Deps {
	return analytics.Deps{
		Users:        store.Users(),
		Plans:        store.Plans(),
		Sales:        store.Sales(),
		Inventory:    store.Inventory(),
		Repairs:      store.Repairs(),
		Tickets:      store.Tickets(),
		PlanRequests: store.PlanRequests(),
		Activity:     store.Activity(),
	}
}

func TestDashboardGetSummary_CombinaMotoresYContadores(t *testing.T) {
	activa := cuentaUsuario("u1", "Taller Activo")
	activa.PlanID = entity.PlanGold

	item := itemInventario("p1", "Pantalla", "Repuestos", 3, 50)
	item.CreatedAt = baseTime.Add(-10 * 24 * time.Hour)

	store := memory.NewStore()
	store.Seed(
		[]entity.User{activa},
		planesDePrueba,
		[]entity.Sale{venta("p1", 30, 300, baseTime.Add(-time.Hour))},
		[]entity.InventoryItem{item},
		[]entity.Repair{
			{ID: "r1", ShopID: "u1", Status: entity.RepairPending},
			{ID: "r2", ShopID: "u1", Status: entity.RepairCompleted},
		},
		[]entity.SupportTicket{
			{ID: "t1", UserID: "u1", Status: entity.TicketPending},
			{ID: "t2", UserID: "u1", Status: entity.TicketInvestigating},
			{ID: "t3", UserID: "u1", Status: entity.TicketResolved},
		},
		nil,
		nil,
		[]entity.WalletTransaction{
			{ID: "w1", UserID: "u1", Amount: decimal.NewFromInt(40), CreatedAt: baseTime.Add(-time.Hour)},
			{ID: "w2", UserID: "u1", Amount: decimal.NewFromInt(99), CreatedAt: baseTime.Add(-48 * time.Hour)},
		},
	)

	uc := analytics.NewDashboardUseCaseWithClock(
		depsDesdeStore(store),
		store.WalletTransactions(),
		func() time.Time { return baseTime },
	)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, baseTime, summary.GeneratedAt)

	// Ingresos: una cuenta activa en gold (120).
	assert.True(t, summary.Revenue.MRR.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 1, summary.Revenue.ActiveAccounts)

	// Reposición: 30 vendidos en 30 días → 1/día, stock 3 → CRITICAL.
	require.Len(t, summary.Restock, 1)
	assert.Equal(t, analytics.RestockCritical, summary.Restock[0].Status)

	// Contadores del día.
	assert.Equal(t, "40", summary.WalletVolumeToday.String(),
		"solo los movimientos de hoy cuentan")
	assert.Equal(t, 2, summary.OpenTickets, "pending + investigating")
	assert.Equal(t, 1, summary.PendingRepairs)
}

func TestDashboardGetSummary_PlataformaVacia(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCaseWithClock(
		depsDesdeStore(store),
		store.WalletTransactions(),
		func() time.Time { return baseTime },
	)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, summary.Risk)
	assert.Empty(t, summary.DeadStock)
	assert.Empty(t, summary.Restock)
	assert.True(t, summary.Revenue.MRR.IsZero())
	assert.True(t, summary.WalletVolumeToday.IsZero())
	assert.Zero(t, summary.OpenTickets)
	assert.Zero(t, summary.PendingRepairs)
}
