package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

// snapshot colecciones completas de la plataforma en un instante.
// Los motores lo reciben como lectura; nadie lo muta durante un cómputo.
type snapshot struct {
	users        []entity.User
	plans        []entity.Plan
	sales        []entity.Sale
	inventory    []entity.InventoryItem
	repairs      []entity.Repair
	tickets      []entity.SupportTicket
	planRequests []entity.PlanRequest
	activity     []entity.ActivityLog
	walletTxs    []entity.WalletTransaction
}

// DashboardUseCase construye el resumen combinado del dashboard de plataforma:
// los seis motores sobre un mismo snapshot más contadores operativos del día.
type DashboardUseCase struct {
	deps      Deps
	walletTxs repository.WalletTransactionRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso con el reloj del sistema.
func NewDashboardUseCase(deps Deps, walletTxs repository.WalletTransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{deps: deps, walletTxs: walletTxs, now: time.Now}
}

// NewDashboardUseCaseWithClock igual que NewDashboardUseCase pero con reloj fijo (tests).
func NewDashboardUseCaseWithClock(deps Deps, walletTxs repository.WalletTransactionRepository, now func() time.Time) *DashboardUseCase {
	return &DashboardUseCase{deps: deps, walletTxs: walletTxs, now: now}
}

// GetSummary carga el snapshot completo y corre los seis motores.
//
// Tres grupos de carga en paralelo (consultas independientes):
//  1. Cuentas: users + plans + planRequests + activity
//  2. Operación: sales + inventory + repairs + tickets
//  3. Billetera: transacciones
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	revenue := BuildRevenueReport(snap.users, snap.plans)
	funnel := BuildFunnelReport(now, snap.users, snap.planRequests, snap.activity)
	risk := BuildRiskReport(snap.users, snap.activity, snap.tickets, snap.planRequests, snap.repairs)
	liquidity := BuildLiquidityReport(now, WindowLast30, "", snap.sales, snap.inventory)
	deadStock := BuildDeadStockReport(now, snap.inventory, snap.sales)
	restock := BuildRestockReport(now, snap.inventory, snap.sales)

	walletToday := decimal.Zero
	for _, tx := range snap.walletTxs {
		if !tx.CreatedAt.IsZero() && !tx.CreatedAt.Before(dayStart) {
			walletToday = walletToday.Add(tx.Amount)
		}
	}

	openTickets := 0
	for _, t := range snap.tickets {
		if t.Status == entity.TicketPending || t.Status == entity.TicketInvestigating {
			openTickets++
		}
	}
	pendingRepairs := 0
	for _, r := range snap.repairs {
		if r.Status == entity.RepairPending {
			pendingRepairs++
		}
	}

	return &dto.DashboardSummaryDTO{
		GeneratedAt:       now,
		Revenue:           revenue,
		Funnel:            funnel,
		Risk:              risk,
		Liquidity:         liquidity,
		DeadStock:         deadStock,
		Restock:           restock,
		WalletVolumeToday: walletToday.Round(2),
		OpenTickets:       openTickets,
		PendingRepairs:    pendingRepairs,
	}, nil
}

func (uc *DashboardUseCase) loadSnapshot(ctx context.Context) (*snapshot, error) {
	type accountsResult struct {
		users        []entity.User
		plans        []entity.Plan
		planRequests []entity.PlanRequest
		activity     []entity.ActivityLog
		err          error
	}
	type opsResult struct {
		sales     []entity.Sale
		inventory []entity.InventoryItem
		repairs   []entity.Repair
		tickets   []entity.SupportTicket
		err       error
	}
	type walletResult struct {
		txs []entity.WalletTransaction
		err error
	}

	accCh := make(chan accountsResult, 1)
	opsCh := make(chan opsResult, 1)
	walletCh := make(chan walletResult, 1)

	go func() {
		var res accountsResult
		if res.users, res.err = uc.deps.Users.List(ctx); res.err != nil {
			accCh <- res
			return
		}
		if res.plans, res.err = uc.deps.Plans.List(ctx); res.err != nil {
			accCh <- res
			return
		}
		if res.planRequests, res.err = uc.deps.PlanRequests.List(ctx); res.err != nil {
			accCh <- res
			return
		}
		res.activity, res.err = uc.deps.Activity.List(ctx)
		accCh <- res
	}()
	go func() {
		var res opsResult
		if res.sales, res.err = uc.deps.Sales.List(ctx); res.err != nil {
			opsCh <- res
			return
		}
		if res.inventory, res.err = uc.deps.Inventory.List(ctx); res.err != nil {
			opsCh <- res
			return
		}
		if res.repairs, res.err = uc.deps.Repairs.List(ctx); res.err != nil {
			opsCh <- res
			return
		}
		res.tickets, res.err = uc.deps.Tickets.List(ctx)
		opsCh <- res
	}()
	go func() {
		txs, err := uc.walletTxs.List(ctx)
		walletCh <- walletResult{txs, err}
	}()

	acc := <-accCh
	ops := <-opsCh
	wallet := <-walletCh

	if acc.err != nil {
		return nil, fmt.Errorf("dashboard: cuentas: %w", acc.err)
	}
	if ops.err != nil {
		return nil, fmt.Errorf("dashboard: operación: %w", ops.err)
	}
	if wallet.err != nil {
		return nil, fmt.Errorf("dashboard: billetera: %w", wallet.err)
	}

	return &snapshot{
		users:        acc.users,
		plans:        acc.plans,
		planRequests: acc.planRequests,
		activity:     acc.activity,
		sales:        ops.sales,
		inventory:    ops.inventory,
		repairs:      ops.repairs,
		tickets:      ops.tickets,
		walletTxs:    wallet.txs,
	}, nil
}
