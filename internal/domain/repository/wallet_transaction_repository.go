package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// WalletTransactionRepository define el puerto de persistencia para WalletTransaction.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx *entity.WalletTransaction) error
	ListByUser(ctx context.Context, userID string) ([]entity.WalletTransaction, error)
	List(ctx context.Context) ([]entity.WalletTransaction, error)
}
