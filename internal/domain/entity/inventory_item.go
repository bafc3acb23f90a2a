package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un producto en el inventario de un taller.
// ActualCost es el costo base opcional para cálculo de margen (cero = desconocido).
type InventoryItem struct {
	ID         string
	ShopID     string
	Name       string
	Category   string
	Stock      int // unidades disponibles
	Price      decimal.Decimal
	ActualCost decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
