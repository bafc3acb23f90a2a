package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.WalletTransactionRepository = (*WalletTransactionRepo)(nil)

// WalletTransactionRepo implementación del puerto WalletTransactionRepository sobre PostgreSQL.
type WalletTransactionRepo struct {
	q Querier
}

// NewWalletTransactionRepository construye el adaptador de movimientos de billetera.
func NewWalletTransactionRepository(q Querier) *WalletTransactionRepo {
	return &WalletTransactionRepo{q: q}
}

const walletTxColumns = `id, user_id, type, amount, status, created_at`

// Create persiste un movimiento de billetera.
func (r *WalletTransactionRepo) Create(ctx context.Context, tx *entity.WalletTransaction) error {
	query := `
		INSERT INTO wallet_transactions (` + walletTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Status, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// ListByUser lista los movimientos de una cuenta.
func (r *WalletTransactionRepo) ListByUser(ctx context.Context, userID string) ([]entity.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()
	return scanWalletTxs(rows)
}

// List devuelve todos los movimientos de la plataforma.
func (r *WalletTransactionRepo) List(ctx context.Context) ([]entity.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()
	return scanWalletTxs(rows)
}

func scanWalletTxs(rows pgx.Rows) ([]entity.WalletTransaction, error) {
	var list []entity.WalletTransaction
	for rows.Next() {
		var tx entity.WalletTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Status, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet transaction: %w", err)
		}
		list = append(list, tx)
	}
	return list, rows.Err()
}
