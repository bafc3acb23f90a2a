package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	ListByShop(ctx context.Context, shopID string) ([]entity.Sale, error)
	List(ctx context.Context) ([]entity.Sale, error)
}
