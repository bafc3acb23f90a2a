package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador de planes.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// List devuelve todos los planes de suscripción.
func (r *PlanRepo) List(ctx context.Context) ([]entity.Plan, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, price FROM plans ORDER BY price`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un plan por ID. Devuelve (nil, nil) si no existe.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	var p entity.Plan
	err := r.q.QueryRow(ctx, `SELECT id, name, price FROM plans WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}
