package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/application/pos"
	"github.com/tu-usuario/tallerpro-api/internal/application/refresh"
	"github.com/tu-usuario/tallerpro-api/internal/domain"
)

// POSHandler maneja el checkout del punto de venta.
type POSHandler struct {
	uc        *pos.RegisterSaleUseCase
	scheduler *refresh.Scheduler // opcional; se invalida tras cada venta
}

// NewPOSHandler construye el handler de POS. scheduler puede ser nil.
func NewPOSHandler(uc *pos.RegisterSaleUseCase, scheduler *refresh.Scheduler) *POSHandler {
	return &POSHandler{uc: uc, scheduler: scheduler}
}

// RegisterSale godoc
// @Summary      Registrar venta POS (descuenta stock atómicamente)
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "product_id, qty, customer"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/sales [post]
func (h *POSHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.RegisterSale(c.Context(), GetShopID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y qty > 0 son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto pertenece a otro taller"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	if h.scheduler != nil {
		h.scheduler.Invalidate()
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
