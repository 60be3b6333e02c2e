package repository

import "github.com/jhoicas/stocktake-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las consultas excluyen productos con borrado lógico salvo que se indique.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID obtiene un producto activo con sus niveles de stock
	// (solo de ubicaciones activas). Devuelve nil, nil si no existe.
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca por SKU sin filtrar borrados: la resolución de items
	// de conteo usa el SKU denormalizado y debe encontrar el producto aunque
	// haya sido borrado después del snapshot.
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve hasta limit productos activos ordenados por
	// (created_at DESC, id DESC), empezando en el cursor (inclusive) si se indica.
	// search viene ya normalizado (minúsculas, sin tildes) y filtra por nombre o SKU.
	List(search, cursor string, limit int) ([]*entity.Product, error)
	// SoftDelete marca el producto como borrado y devuelve la entidad actualizada.
	SoftDelete(id string) (*entity.Product, error)
	// ExistsActive verifica si existe un producto activo con field = value,
	// excluyendo opcionalmente un ID (para updates). field debe ser uno de
	// sku, barcode o name.
	ExistsActive(field, value, excludeID string) (bool, error)
}
