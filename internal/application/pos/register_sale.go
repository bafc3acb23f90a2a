package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

// RegisterSaleUseCase registra una venta POS: valida el ítem, descuenta stock
// y persiste la venta en una sola transacción.
type RegisterSaleUseCase struct {
	tx  TxRunner
	now func() time.Time
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(tx TxRunner) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{tx: tx, now: time.Now}
}

// RegisterSale ejecuta el checkout. El precio y el total se toman del ítem en
// el momento de la venta, nunca del cliente. Errores de dominio:
// ErrInvalidInput (qty <= 0), ErrNotFound (ítem inexistente), ErrForbidden
// (ítem de otro taller), ErrInsufficientStock.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, shopID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.Qty <= 0 || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.SaleResponse
	err := uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, inventoryRepo repository.InventoryRepository) error {
		item, err := inventoryRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.ShopID != shopID {
			return domain.ErrForbidden
		}
		if err := inventoryRepo.DecrementStock(ctx, item.ID, in.Qty); err != nil {
			return err
		}

		sale := &entity.Sale{
			ID:        uuid.New().String(),
			ShopID:    shopID,
			ProductID: item.ID,
			Qty:       in.Qty,
			Price:     item.Price,
			Total:     item.Price.Mul(decimal.NewFromInt(int64(in.Qty))),
			Customer:  in.Customer,
			Date:      uc.now(),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		out = &dto.SaleResponse{
			ID:        sale.ID,
			ProductID: sale.ProductID,
			Qty:       sale.Qty,
			Price:     sale.Price,
			Total:     sale.Total,
			Customer:  sale.Customer,
			Date:      sale.Date,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
