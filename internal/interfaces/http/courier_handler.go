package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// CourierHandler maneja las peticiones HTTP para Courier (protegido).
type CourierHandler struct {
	uc *usecase.CourierUseCase
}

// NewCourierHandler construye el handler.
func NewCourierHandler(uc *usecase.CourierUseCase) *CourierHandler {
	return &CourierHandler{uc: uc}
}

// Create registra una transportadora.
// POST /api/couriers
func (h *CourierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCourierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una transportadora.
// GET /api/couriers/:id
func (h *CourierHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transportadora no encontrada"})
	}
	return c.JSON(out)
}

// List lista transportadoras.
// GET /api/couriers
func (h *CourierHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.List(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListActive lista solo transportadoras activas, para selección al despachar.
// GET /api/couriers/active
func (h *CourierHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una transportadora.
// PUT /api/couriers/:id
func (h *CourierHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCourierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transportadora no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una transportadora.
// DELETE /api/couriers/:id
func (h *CourierHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
