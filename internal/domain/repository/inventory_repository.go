package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
// DecrementStock debe fallar con domain.ErrInsufficientStock si la resta
// dejaría el stock negativo.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	ListByShop(ctx context.Context, shopID string) ([]entity.InventoryItem, error)
	List(ctx context.Context) ([]entity.InventoryItem, error)
	DecrementStock(ctx context.Context, id string, qty int) error
	Delete(ctx context.Context, id string) error
}
