package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

// RepairRepo implementación del puerto RepairRepository sobre PostgreSQL.
type RepairRepo struct {
	q Querier
}

// NewRepairRepository construye el adaptador de reparaciones.
func NewRepairRepository(q Querier) *RepairRepo {
	return &RepairRepo{q: q}
}

const repairColumns = `id, shop_id, customer_name, device, status, repair_date`

// Create persiste una orden de reparación.
func (r *RepairRepo) Create(ctx context.Context, repair *entity.Repair) error {
	query := `
		INSERT INTO repairs (` + repairColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		repair.ID, repair.ShopID, repair.CustomerName, repair.Device, repair.Status, repair.Date,
	)
	if err != nil {
		return fmt.Errorf("insert repair: %w", err)
	}
	return nil
}

// ListByShop lista las reparaciones de un taller.
func (r *RepairRepo) ListByShop(ctx context.Context, shopID string) ([]entity.Repair, error) {
	query := `SELECT ` + repairColumns + ` FROM repairs WHERE shop_id = $1 ORDER BY repair_date DESC`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()
	return scanRepairs(rows)
}

// List devuelve todas las reparaciones de la plataforma.
func (r *RepairRepo) List(ctx context.Context) ([]entity.Repair, error) {
	query := `SELECT ` + repairColumns + ` FROM repairs ORDER BY repair_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()
	return scanRepairs(rows)
}

func scanRepairs(rows pgx.Rows) ([]entity.Repair, error) {
	var list []entity.Repair
	for rows.Next() {
		var rep entity.Repair
		if err := rows.Scan(&rep.ID, &rep.ShopID, &rep.CustomerName, &rep.Device,
			&rep.Status, &rep.Date); err != nil {
			return nil, fmt.Errorf("scan repair: %w", err)
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}
