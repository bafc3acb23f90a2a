package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// PlanRepository define el puerto de lectura para los planes de suscripción.
type PlanRepository interface {
	List(ctx context.Context) ([]entity.Plan, error)
	GetByID(ctx context.Context, id string) (*entity.Plan, error)
}
