package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem de inventario.
type CreateItemRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Category   string          `json:"category" validate:"required,min=1,max=100"`
	Stock      int             `json:"stock" validate:"min=0"`
	Price      decimal.Decimal `json:"price"`
	ActualCost decimal.Decimal `json:"actual_cost"`
}

// UpdateItemRequest entrada para actualizar un ítem. Punteros: nil = sin cambio.
type UpdateItemRequest struct {
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Stock      *int             `json:"stock"`
	Price      *decimal.Decimal `json:"price"`
	ActualCost *decimal.Decimal `json:"actual_cost"`
}

// ItemResponse salida de un ítem de inventario.
type ItemResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	ActualCost decimal.Decimal `json:"actual_cost"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
