package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/usecase"
)

// RawMaterialHandler maneja las peticiones HTTP para RawMaterial.
type RawMaterialHandler struct {
	uc *usecase.RawMaterialUseCase
}

// NewRawMaterialHandler construye el handler.
func NewRawMaterialHandler(uc *usecase.RawMaterialUseCase) *RawMaterialHandler {
	return &RawMaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear materia prima
// @Tags         raw-materials
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRawMaterialRequest  true  "Datos de la materia prima"
// @Success      201   {object}  dto.RawMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/raw-materials [post]
func (h *RawMaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar materias primas
// @Tags         raw-materials
// @Produce      json
// @Success      200  {array}  dto.RawMaterialResponse
// @Router       /api/raw-materials [get]
func (h *RawMaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener materia prima por ID
// @Tags         raw-materials
// @Produce      json
// @Param        id   path  string  true  "ID de la materia prima"
// @Success      200  {object}  dto.RawMaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [get]
func (h *RawMaterialHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar materia prima
// @Tags         raw-materials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la materia prima"
// @Param        body  body  dto.UpdateRawMaterialRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RawMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [put]
func (h *RawMaterialHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar materia prima
// @Tags         raw-materials
// @Param        id  path  string  true  "ID de la materia prima"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [delete]
func (h *RawMaterialHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
