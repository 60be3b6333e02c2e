package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrStocktakeCompleted = errors.New("el conteo físico ya fue finalizado")
)

// DuplicateError indica una violación de unicidad sobre un campo concreto.
// Lo produce la capa de persistencia al traducir el constraint violado, de
// modo que el caso de uso pueda reportar el campo en conflicto aunque la
// verificación previa haya pasado (inserciones concurrentes).
type DuplicateError struct {
	Field string // sku, barcode, name
}

func (e *DuplicateError) Error() string {
	return "valor duplicado en el campo " + e.Field
}

// Is permite errors.Is(err, ErrDuplicate) sobre un DuplicateError.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}
