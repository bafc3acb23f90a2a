package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/application/pos"
	"github.com/tu-usuario/tallerpro-api/internal/domain"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/memory"
)

func storeConItem(stock int, price int64) *memory.Store {
	store := memory.NewStore()
	store.Seed(
		nil, nil, nil,
		[]entity.InventoryItem{{
			ID:     "p1",
			ShopID: "shop1",
			Name:   "Pantalla",
			Stock:  stock,
			Price:  decimal.NewFromInt(price),
		}},
		nil, nil, nil, nil, nil,
	)
	return store
}

func TestRegisterSale_DescuentaStockYCalculaTotal(t *testing.T) {
	store := storeConItem(10, 50)
	uc := pos.NewRegisterSaleUseCase(memory.NewTxRunner(store))

	sale, err := uc.RegisterSale(context.Background(), "shop1", dto.RegisterSaleRequest{
		ProductID: "p1",
		Qty:       3,
		Customer:  "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", sale.ProductID)
	assert.Equal(t, 3, sale.Qty)
	assert.True(t, sale.Price.Equal(decimal.NewFromInt(50)),
		"el precio viene del ítem, no del cliente")
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(150)), "3 * 50")
	assert.NotEmpty(t, sale.ID)
	assert.False(t, sale.Date.IsZero())

	item, err := store.Inventory().GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Stock, "la venta descuenta stock")

	sales, err := store.Sales().ListByShop(context.Background(), "shop1")
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestRegisterSale_StockInsuficiente(t *testing.T) {
	store := storeConItem(2, 50)
	uc := pos.NewRegisterSaleUseCase(memory.NewTxRunner(store))

	_, err := uc.RegisterSale(context.Background(), "shop1", dto.RegisterSaleRequest{
		ProductID: "p1",
		Qty:       3,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, _ := store.Inventory().GetByID(context.Background(), "p1")
	assert.Equal(t, 2, item.Stock, "el stock no se toca si la venta falla")
}

func TestRegisterSale_ValidacionDeEntrada(t *testing.T) {
	uc := pos.NewRegisterSaleUseCase(memory.NewTxRunner(storeConItem(5, 10)))

	_, err := uc.RegisterSale(context.Background(), "shop1", dto.RegisterSaleRequest{ProductID: "p1", Qty: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "qty cero")

	_, err = uc.RegisterSale(context.Background(), "shop1", dto.RegisterSaleRequest{ProductID: "p1", Qty: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "qty negativa")

	_, err = uc.RegisterSale(context.Background(), "shop1", dto.RegisterSaleRequest{Qty: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_id vacío")
}

func TestRegisterSale_ItemInexistente(t *testing.T) {
	uc := pos.NewRegisterSaleUseCase(memory.NewTxRunner(storeConItem(5, 10)))

	_, err := uc.RegisterSale(context.Background(), "shop1", dto.RegisterSaleRequest{
		ProductID: "no-existe",
		Qty:       1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un ítem de otro taller es forbidden, no not-found: el ID existe pero el
// tenant del token no es el dueño.
func TestRegisterSale_ItemDeOtroTaller(t *testing.T) {
	uc := pos.NewRegisterSaleUseCase(memory.NewTxRunner(storeConItem(5, 10)))

	_, err := uc.RegisterSale(context.Background(), "shop2", dto.RegisterSaleRequest{
		ProductID: "p1",
		Qty:       1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterSale_FechaDelServidor(t *testing.T) {
	store := storeConItem(5, 10)
	uc := pos.NewRegisterSaleUseCase(memory.NewTxRunner(store))

	antes := time.Now()
	sale, err := uc.RegisterSale(context.Background(), "shop1", dto.RegisterSaleRequest{
		ProductID: "p1",
		Qty:       1,
	})
	require.NoError(t, err)
	assert.False(t, sale.Date.Before(antes), "la fecha la pone el servidor")
}
