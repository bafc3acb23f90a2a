package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tallerpro-api/internal/domain"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const itemColumns = `id, shop_id, name, category, stock, price, actual_cost, created_at, updated_at`

// Create persiste un nuevo ítem de inventario.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ShopID, item.Name, item.Category, item.Stock, item.Price,
		item.ActualCost, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.ShopID, &it.Name, &it.Category, &it.Stock, &it.Price,
		&it.ActualCost, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// Update actualiza un ítem. El stock no se toca aquí: se maneja vía DecrementStock
// o ajustes explícitos para no pisar ventas concurrentes.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, price = $4, actual_cost = $5, stock = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Price, item.ActualCost, item.Stock, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// ListByShop lista el inventario de un taller.
func (r *InventoryRepo) ListByShop(ctx context.Context, shopID string) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE shop_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// List devuelve todo el inventario de la plataforma.
func (r *InventoryRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// DecrementStock descuenta qty unidades de forma atómica. La condición
// stock >= qty en el WHERE evita stock negativo bajo concurrencia; si no
// afecta filas se distingue entre ítem inexistente y stock insuficiente.
func (r *InventoryRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventory_items SET stock = stock - $2, updated_at = now()
		 WHERE id = $1 AND stock >= $2`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM inventory_items WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check inventory item: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]entity.InventoryItem, error) {
	var list []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.ShopID, &it.Name, &it.Category, &it.Stock, &it.Price,
			&it.ActualCost, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
