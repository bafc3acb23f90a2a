package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest entrada de POST /api/pos/sales (checkout POS).
// El total se calcula en el servidor: qty * precio actual del ítem.
type RegisterSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int    `json:"qty" validate:"required,min=1"`
	Customer  string `json:"customer" validate:"omitempty,max=200"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Customer  string          `json:"customer,omitempty"`
	Date      time.Time       `json:"date"`
}
