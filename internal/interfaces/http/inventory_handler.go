package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/application/inventory"
	"github.com/tu-usuario/tallerpro-api/internal/domain"
)

// InventoryHandler maneja el CRUD de inventario del taller.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category, stock, price"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.Context(), GetShopID(c), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List godoc
// @Summary      Listar inventario del taller
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetShopID(c))
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), GetShopID(c), c.Params("id"))
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Actualizar ítem (parcial)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Context(), GetShopID(c), c.Params("id"), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         inventory
// @Param        id  path  string  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return inventoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func inventoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el ítem pertenece a otro taller"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ítem duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
