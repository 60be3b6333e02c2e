package dto

// Tipos de error de las mutaciones del catálogo y los conteos.
// Se devuelven en el campo errorType del resultado estructurado para que el
// cliente pueda mostrar el mensaje junto al campo en conflicto.
const (
	ErrTypeDuplicateSKU      = "DUPLICATE_SKU"
	ErrTypeDuplicateBarcode  = "DUPLICATE_BARCODE"
	ErrTypeDuplicateProduct  = "DUPLICATE_PRODUCT"
	ErrTypeDuplicateLocation = "DUPLICATE_LOCATION"
	ErrTypeDatabase          = "DATABASE_ERROR"
	ErrTypeNotFound          = "NOT_FOUND"
	ErrTypeAlreadyCompleted  = "ALREADY_COMPLETED"
)

// ErrorResponse cuerpo de error HTTP para operaciones de lectura.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MutationResult resultado estructurado de create/update/delete: las
// condiciones de negocio (duplicados, no encontrado, ya finalizado) se
// devuelven como valor en lugar de propagarse como fallo genérico.
type MutationResult[T any] struct {
	Success   bool    `json:"success"`
	Error     *string `json:"error"`
	ErrorType *string `json:"errorType"`
	Data      *T      `json:"data"`
}

// OkResult construye un resultado exitoso con datos.
func OkResult[T any](data *T) *MutationResult[T] {
	return &MutationResult[T]{Success: true, Data: data}
}

// FailResult construye un resultado fallido con mensaje y tipo de error.
func FailResult[T any](message, errorType string) *MutationResult[T] {
	return &MutationResult[T]{Success: false, Error: &message, ErrorType: &errorType}
}
