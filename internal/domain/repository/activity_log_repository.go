package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// ActivityLogRepository define el puerto para la bitácora de auditoría.
// Log es append-only; la bitácora nunca se actualiza ni se borra.
type ActivityLogRepository interface {
	Log(ctx context.Context, entry *entity.ActivityLog) error
	ListByUser(ctx context.Context, userID string) ([]entity.ActivityLog, error)
	List(ctx context.Context) ([]entity.ActivityLog, error)
}
