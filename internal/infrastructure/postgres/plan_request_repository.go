package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.PlanRequestRepository = (*PlanRequestRepo)(nil)

// PlanRequestRepo implementación del puerto PlanRequestRepository sobre PostgreSQL.
type PlanRequestRepo struct {
	q Querier
}

// NewPlanRequestRepository construye el adaptador de solicitudes de plan.
func NewPlanRequestRepository(q Querier) *PlanRequestRepo {
	return &PlanRequestRepo{q: q}
}

// Create persiste una solicitud de cambio de plan.
func (r *PlanRequestRepo) Create(ctx context.Context, req *entity.PlanRequest) error {
	query := `
		INSERT INTO plan_requests (id, shop_id, plan_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, req.ID, req.ShopID, req.PlanID, req.Status, req.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert plan request: %w", err)
	}
	return nil
}

// List devuelve todas las solicitudes de plan.
func (r *PlanRequestRepo) List(ctx context.Context) ([]entity.PlanRequest, error) {
	query := `SELECT id, shop_id, plan_id, status, created_at FROM plan_requests ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plan requests: %w", err)
	}
	defer rows.Close()
	var list []entity.PlanRequest
	for rows.Next() {
		var req entity.PlanRequest
		if err := rows.Scan(&req.ID, &req.ShopID, &req.PlanID, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}
