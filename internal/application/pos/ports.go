// Package pos contiene el caso de uso de checkout del punto de venta.
package pos

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la venta y el descuento de
// stock se confirmen juntos o no se confirme ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
