package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// PlanRequestRepository define el puerto de persistencia para PlanRequest.
type PlanRequestRepository interface {
	Create(ctx context.Context, req *entity.PlanRequest) error
	List(ctx context.Context) ([]entity.PlanRequest, error)
}
