package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/application/shipping"
	"github.com/jmfarias/traslados-api/internal/domain"
)

// ShippingHandler maneja el armado y despacho de paquetes.
type ShippingHandler struct {
	composer *shipping.ComposerUseCase
	transfer *shipping.TransferUseCase
}

// NewShippingHandler construye el handler.
func NewShippingHandler(composer *shipping.ComposerUseCase, transfer *shipping.TransferUseCase) *ShippingHandler {
	return &ShippingHandler{composer: composer, transfer: transfer}
}

// EligibleItems godoc
// @Summary      Renglones elegibles para armar un paquete
// @Description  Renglones de órdenes recibidas, sin paquete asignado y con stock en Jujuy. Incluye el máximo despachable por renglón.
// @Tags         shipping
// @Produce      json
// @Success      200  {array}  dto.EligibleItemResponse
// @Router       /api/shipping/eligible-items [get]
func (h *ShippingHandler) EligibleItems(c *fiber.Ctx) error {
	out, err := h.composer.EligibleItems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Previsualizar el prorrateo del flete
// @Description  Calcula cómo se repartiría el costo de transporte entre los renglones seleccionados, sin escribir nada.
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewRequest  true  "Selección y costo de transporte"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipping/preview [post]
func (h *ShippingHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.composer.Preview(c.Context(), in)
	if err != nil {
		return respondShippingError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Despachar un paquete
// @Description  Crea el paquete, parte o vincula los renglones, descuenta stock de Jujuy y fija el costo unitario con flete incluido. Todo o nada.
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitPackageRequest  true  "Paquete completo"
// @Success      201   {object}  dto.PackageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipping/packages [post]
func (h *ShippingHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitPackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transfer.Commit(c.Context(), in)
	if err != nil {
		return respondShippingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// respondShippingError mapea los errores del motor de envíos a HTTP. Los
// conflictos de estado del mundo (renglón ya asignado, sin stock) van como
// 409 para distinguirlos de un formulario mal armado (400).
func respondShippingError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "selección o formulario inválido"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "renglón no encontrado"})
	case domain.ErrItemAssigned:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ITEM_ASSIGNED", Message: "el renglón ya pertenece a un paquete"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "sin stock en Jujuy para el renglón"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el estado cambió, recargá e intentá de nuevo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
