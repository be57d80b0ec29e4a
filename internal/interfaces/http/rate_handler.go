package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/application/usecase"
	"github.com/jmfarias/traslados-api/internal/domain"
)

// RateHandler maneja las tarifas de transporte.
type RateHandler struct {
	uc *usecase.RateUseCase
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *usecase.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarifa de transporte
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveRateRequest  true  "Tarifa"
// @Success      201   {object}  dto.RateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "courier, destination y base_rate no negativa son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una tarifa para ese transporte y destino"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Lookup godoc
// @Summary      Buscar tarifa y flete sugerido
// @Description  Devuelve la tarifa para (courier, destination) y el costo sugerido para el peso dado. El operador siempre puede pisarlo.
// @Tags         rates
// @Produce      json
// @Param        courier      query  string  true   "Empresa de transporte"
// @Param        destination  query  string  true   "Destino"
// @Param        weight_kg    query  number  false  "Peso estimado en kg"
// @Success      200  {object}  dto.RateLookupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/lookup [get]
func (h *RateHandler) Lookup(c *fiber.Ctx) error {
	courier := c.Query("courier")
	destination := c.Query("destination")
	weight := decimal.Zero
	if raw := c.Query("weight_kg"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weight_kg inválido"})
		}
		weight = parsed
	}
	out, err := h.uc.Lookup(courier, destination, weight)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "courier y destination son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay tarifa cargada para ese transporte y destino"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tarifas
// @Tags         rates
// @Produce      json
// @Success      200  {array}  dto.RateResponse
// @Router       /api/rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarifa
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarifa"
// @Param        body  body  dto.SaveRateRequest  true  "Tarifa"
// @Success      200   {object}  dto.RateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [put]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "courier, destination y base_rate no negativa son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarifa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar tarifa
// @Tags         rates
// @Param        id  path  string  true  "ID de la tarifa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [delete]
func (h *RateHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarifa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
