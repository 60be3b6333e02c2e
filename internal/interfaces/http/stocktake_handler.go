package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktake-api/internal/application/dto"
	appstocktake "github.com/jhoicas/stocktake-api/internal/application/stocktake"
	"github.com/jhoicas/stocktake-api/internal/domain"
)

// StocktakeHandler maneja las peticiones HTTP para las sesiones de conteo físico.
type StocktakeHandler struct {
	uc *appstocktake.UseCase
}

// NewStocktakeHandler construye el handler.
func NewStocktakeHandler(uc *appstocktake.UseCase) *StocktakeHandler {
	return &StocktakeHandler{uc: uc}
}

// List godoc
// @Summary      Listar sesiones de conteo
// @Tags         stocktakes
// @Produce      json
// @Param        locationId  query  string  false  "Filtrar por ubicación"
// @Success      200         {object}  dto.StocktakeListResponse
// @Router       /api/stocktakes [get]
func (h *StocktakeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("locationId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sesión de conteo por ID
// @Tags         stocktakes
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.StocktakeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocktakes/{id} [get]
func (h *StocktakeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión de conteo no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Iniciar sesión de conteo (snapshot del stock de la ubicación)
// @Tags         stocktakes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStocktakeRequest  true  "Ubicación y datos del conteo"
// @Success      201   {object}  dto.StocktakeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocktakes [post]
func (h *StocktakeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStocktakeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItemCount godoc
// @Summary      Registrar la cantidad contada de un item
// @Tags         stocktakes
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID del item"
// @Param        body    body  dto.UpdateItemCountRequest  true  "Cantidad contada"
// @Success      200     {object}  dto.StocktakeItemResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/stocktakes/items/{itemId}/count [put]
func (h *StocktakeHandler) UpdateItemCount(c *fiber.Ctx) error {
	var in dto.UpdateItemCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CountedQuantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "counted_quantity no puede ser negativa"})
	}
	out, err := h.uc.RecordCount(c.Params("itemId"), in.CountedQuantity)
	if err != nil {
		return h.mapStocktakeError(c, err, "item de conteo no encontrado")
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Finalizar sesión aplicando las cantidades contadas al stock
// @Tags         stocktakes
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.StocktakeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stocktakes/{id}/finalize [post]
func (h *StocktakeHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.mapStocktakeError(c, err, "sesión de conteo no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sesión de conteo (borrado físico)
// @Tags         stocktakes
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.StocktakeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocktakes/{id} [delete]
func (h *StocktakeHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return h.mapStocktakeError(c, err, "sesión de conteo no encontrada")
	}
	return c.JSON(out)
}

func (h *StocktakeHandler) mapStocktakeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: dto.ErrTypeNotFound, Message: notFoundMsg})
	case errors.Is(err, domain.ErrStocktakeCompleted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: dto.ErrTypeAlreadyCompleted, Message: "la sesión de conteo ya fue finalizada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
