package http

import (
	"github.com/gofiber/fiber/v2"

	appdispatch "github.com/jhoicas/Almacen-api/internal/application/dispatch"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// DispatchHandler maneja el workflow de despacho y el historial (protegido).
type DispatchHandler struct {
	dispatchUC *appdispatch.UseCase
	recordUC   *usecase.DispatchRecordUseCase
}

// NewDispatchHandler construye el handler.
func NewDispatchHandler(dispatchUC *appdispatch.UseCase, recordUC *usecase.DispatchRecordUseCase) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC, recordUC: recordUC}
}

// Dispatch godoc
// @Summary      Despachar stock
// @Description  Valida stock y transportadora, crea Shipment y DispatchRecord y decrementa el stock en una sola transacción.
// @Tags         dispatch
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DispatchRequest  true  "Datos del despacho"
// @Success      201   {object}  dto.DispatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/dispatch [post]
func (h *DispatchHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.dispatchUC.Dispatch(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista el historial de despachos.
// GET /api/dispatch
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.recordUC.List(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un registro de despacho.
// GET /api/dispatch/:dispatchId
func (h *DispatchHandler) GetByID(c *fiber.Ctx) error {
	dispatchID := c.Params("dispatchId")
	if dispatchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "dispatchId es requerido"})
	}
	out, err := h.recordUC.GetByID(dispatchID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de despacho no encontrado"})
	}
	return c.JSON(out)
}

// UpdateStatus actualiza el estado interno de un despacho, independiente del
// estado del Shipment asociado.
// PUT /api/dispatch/:dispatchId/status
func (h *DispatchHandler) UpdateStatus(c *fiber.Ctx) error {
	dispatchID := c.Params("dispatchId")
	if dispatchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "dispatchId es requerido"})
	}
	var in dto.UpdateDispatchStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.recordUC.UpdateStatus(dispatchID, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de despacho no encontrado"})
	}
	return c.JSON(out)
}
