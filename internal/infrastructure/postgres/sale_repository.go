package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, shop_id, product_id, qty, price, total, customer, sale_date`

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ShopID, sale.ProductID, sale.Qty, sale.Price, sale.Total,
		sale.Customer, sale.Date,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByShop lista las ventas de un taller.
func (r *SaleRepo) ListByShop(ctx context.Context, shopID string) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE shop_id = $1 ORDER BY sale_date DESC`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// List devuelve todas las ventas de la plataforma.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]entity.Sale, error) {
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ShopID, &s.ProductID, &s.Qty, &s.Price, &s.Total,
			&s.Customer, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
