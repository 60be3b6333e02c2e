package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktake-api/internal/application/dto"
)

// statusForErrorType mapea el tipo de error de un resultado estructurado al
// código HTTP. El cuerpo sigue siendo el resultado completo para que el
// cliente muestre el mensaje junto al campo en conflicto.
func statusForErrorType(errorType *string) int {
	if errorType == nil {
		return fiber.StatusInternalServerError
	}
	switch *errorType {
	case dto.ErrTypeDuplicateSKU, dto.ErrTypeDuplicateBarcode,
		dto.ErrTypeDuplicateProduct, dto.ErrTypeDuplicateLocation,
		dto.ErrTypeAlreadyCompleted:
		return fiber.StatusConflict
	case dto.ErrTypeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
