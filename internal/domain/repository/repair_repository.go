package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// RepairRepository define el puerto de persistencia para Repair.
type RepairRepository interface {
	Create(ctx context.Context, repair *entity.Repair) error
	ListByShop(ctx context.Context, shopID string) ([]entity.Repair, error)
	List(ctx context.Context) ([]entity.Repair, error)
}
