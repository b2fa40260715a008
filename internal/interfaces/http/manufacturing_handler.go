package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/manufacturing"
)

// ManufacturingHandler maneja las peticiones HTTP para órdenes de producción.
type ManufacturingHandler struct {
	uc *manufacturing.RegisterProductionUseCase
}

// NewManufacturingHandler construye el handler.
func NewManufacturingHandler(uc *manufacturing.RegisterProductionUseCase) *ManufacturingHandler {
	return &ManufacturingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar producción
// @Description  Valida el consumo todo-o-nada, persiste la orden, suma producto terminado y descuenta materias primas.
// @Tags         manufacturing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManufacturingRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.ManufacturingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manufacturing [post]
func (h *ManufacturingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManufacturingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes de producción
// @Tags         manufacturing
// @Produce      json
// @Success      200  {array}  dto.ManufacturingResponse
// @Router       /api/manufacturing [get]
func (h *ManufacturingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
