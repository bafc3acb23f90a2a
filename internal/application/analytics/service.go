package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

// Deps repositorios que alimentan los motores de analítica.
type Deps struct {
	Users        repository.UserRepository
	Plans        repository.PlanRepository
	Sales        repository.SaleRepository
	Inventory    repository.InventoryRepository
	Repairs      repository.RepairRepository
	Tickets      repository.SupportTicketRepository
	PlanRequests repository.PlanRequestRepository
	Activity     repository.ActivityLogRepository
}

// Service expone los reportes de analítica cargando el snapshot desde los
// puertos de persistencia y delegando el cómputo en las funciones puras del
// paquete. El reloj es inyectable para tests deterministas.
type Service struct {
	deps Deps
	now  func() time.Time
}

// NewService construye el servicio con el reloj del sistema.
func NewService(deps Deps) *Service {
	return &Service{deps: deps, now: time.Now}
}

// NewServiceWithClock construye el servicio con un reloj fijo (tests).
func NewServiceWithClock(deps Deps, now func() time.Time) *Service {
	return &Service{deps: deps, now: now}
}

// RiskReport genera la clasificación de riesgo por cuenta (plataforma completa).
func (s *Service) RiskReport(ctx context.Context) ([]dto.RiskEntryDTO, error) {
	users, err := s.deps.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: usuarios: %w", err)
	}
	activity, err := s.deps.Activity.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: bitácora: %w", err)
	}
	tickets, err := s.deps.Tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: tickets: %w", err)
	}
	planReqs, err := s.deps.PlanRequests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: solicitudes de plan: %w", err)
	}
	repairs, err := s.deps.Repairs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: reparaciones: %w", err)
	}
	return BuildRiskReport(users, activity, tickets, planReqs, repairs), nil
}

// FunnelReport genera los buckets del funnel y los contadores de ciclo de vida.
func (s *Service) FunnelReport(ctx context.Context) (*dto.FunnelReportDTO, error) {
	users, err := s.deps.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: usuarios: %w", err)
	}
	planReqs, err := s.deps.PlanRequests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: solicitudes de plan: %w", err)
	}
	activity, err := s.deps.Activity.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: bitácora: %w", err)
	}
	report := BuildFunnelReport(s.now(), users, planReqs, activity)
	return &report, nil
}

// RevenueReport calcula MRR/ARR/ARPU de las cuentas activas.
func (s *Service) RevenueReport(ctx context.Context) (*dto.RevenueReportDTO, error) {
	users, err := s.deps.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: usuarios: %w", err)
	}
	plans, err := s.deps.Plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: planes: %w", err)
	}
	report := BuildRevenueReport(users, plans)
	return &report, nil
}

// LiquidityReport clasifica capital vendido vs inmovilizado para un taller.
func (s *Service) LiquidityReport(ctx context.Context, shopID string, window Window, query string) (*dto.LiquidityReportDTO, error) {
	sales, inventory, err := s.loadShopData(ctx, shopID)
	if err != nil {
		return nil, err
	}
	report := BuildLiquidityReport(s.now(), window, query, sales, inventory)
	return &report, nil
}

// DeadStockReport lista los ítems estancados de un taller.
func (s *Service) DeadStockReport(ctx context.Context, shopID string) ([]dto.DeadStockItemDTO, error) {
	sales, inventory, err := s.loadShopData(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return BuildDeadStockReport(s.now(), inventory, sales), nil
}

// RestockReport lista las sugerencias de reposición de un taller.
func (s *Service) RestockReport(ctx context.Context, shopID string) ([]dto.RestockSuggestionDTO, error) {
	sales, inventory, err := s.loadShopData(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return BuildRestockReport(s.now(), inventory, sales), nil
}

// loadShopData carga ventas e inventario de un taller en paralelo
// (consultas independientes).
func (s *Service) loadShopData(ctx context.Context, shopID string) ([]entity.Sale, []entity.InventoryItem, error) {
	type salesResult struct {
		rows []entity.Sale
		err  error
	}
	type invResult struct {
		rows []entity.InventoryItem
		err  error
	}

	salesCh := make(chan salesResult, 1)
	invCh := make(chan invResult, 1)

	go func() {
		rows, err := s.deps.Sales.ListByShop(ctx, shopID)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := s.deps.Inventory.ListByShop(ctx, shopID)
		invCh <- invResult{rows, err}
	}()

	sales := <-salesCh
	inv := <-invCh

	if sales.err != nil {
		return nil, nil, fmt.Errorf("analytics: ventas: %w", sales.err)
	}
	if inv.err != nil {
		return nil, nil, fmt.Errorf("analytics: inventario: %w", inv.err)
	}
	return sales.rows, inv.rows, nil
}
