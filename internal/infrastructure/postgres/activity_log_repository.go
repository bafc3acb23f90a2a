package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
// La tabla es append-only: no hay update ni delete.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de la bitácora.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Log agrega una entrada a la bitácora.
func (r *ActivityLogRepo) Log(ctx context.Context, entry *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, action_type, status, ts)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, entry.ID, entry.UserID, entry.ActionType, entry.Status, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListByUser lista la bitácora de una cuenta.
func (r *ActivityLogRepo) ListByUser(ctx context.Context, userID string) ([]entity.ActivityLog, error) {
	query := `SELECT id, user_id, action_type, status, ts FROM activity_logs WHERE user_id = $1 ORDER BY ts DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	return scanActivity(rows)
}

// List devuelve toda la bitácora de la plataforma.
func (r *ActivityLogRepo) List(ctx context.Context) ([]entity.ActivityLog, error) {
	query := `SELECT id, user_id, action_type, status, ts FROM activity_logs ORDER BY ts DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	return scanActivity(rows)
}

func scanActivity(rows pgx.Rows) ([]entity.ActivityLog, error) {
	var list []entity.ActivityLog
	for rows.Next() {
		var a entity.ActivityLog
		if err := rows.Scan(&a.ID, &a.UserID, &a.ActionType, &a.Status, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
