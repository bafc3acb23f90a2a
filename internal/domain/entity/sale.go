package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta POS de un ítem de inventario.
// Date puede venir en cero si el registro de origen traía una fecha
// malformada; los filtros por ventana la tratan como no coincidente.
type Sale struct {
	ID        string
	ShopID    string
	ProductID string
	Qty       int
	Price     decimal.Decimal // precio unitario al momento de la venta
	Total     decimal.Decimal // qty * price
	Customer  string
	Date      time.Time
}
