// Package inventory contiene los casos de uso CRUD del inventario de un taller.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

// UseCase casos de uso de inventario. Toda operación está acotada al taller
// del token: un ítem de otro taller se trata como ErrForbidden.
type UseCase struct {
	repo repository.InventoryRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// Create da de alta un ítem en el inventario del taller.
func (uc *UseCase) Create(ctx context.Context, shopID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Category == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	item := &entity.InventoryItem{
		ID:         uuid.New().String(),
		ShopID:     shopID,
		Name:       in.Name,
		Category:   in.Category,
		Stock:      in.Stock,
		Price:      in.Price,
		ActualCost: in.ActualCost,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Get obtiene un ítem del taller.
func (uc *UseCase) Get(ctx context.Context, shopID, id string) (*dto.ItemResponse, error) {
	item, err := uc.getOwned(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista el inventario del taller.
func (uc *UseCase) List(ctx context.Context, shopID string) ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *toItemResponse(&items[i]))
	}
	return out, nil
}

// Update aplica cambios parciales a un ítem (campos nil quedan como están).
func (uc *UseCase) Update(ctx context.Context, shopID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.getOwned(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Stock = *in.Stock
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.ActualCost != nil {
		item.ActualCost = *in.ActualCost
	}
	item.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem del taller.
func (uc *UseCase) Delete(ctx context.Context, shopID, id string) error {
	if _, err := uc.getOwned(ctx, shopID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UseCase) getOwned(ctx context.Context, shopID, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.ShopID != shopID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Category:   it.Category,
		Stock:      it.Stock,
		Price:      it.Price,
		ActualCost: it.ActualCost,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}
