package repository

import "github.com/jhoicas/stocktake-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para InventoryLocation (DIP).
type LocationRepository interface {
	Create(location *entity.InventoryLocation) error
	// GetByID obtiene una ubicación activa con sus niveles de stock
	// (solo de productos activos). Devuelve nil, nil si no existe.
	GetByID(id string) (*entity.InventoryLocation, error)
	Update(location *entity.InventoryLocation) error
	// List devuelve todas las ubicaciones activas ordenadas por created_at DESC.
	List() ([]*entity.InventoryLocation, error)
	SoftDelete(id string) (*entity.InventoryLocation, error)
	// ExistsActive verifica si existe una ubicación activa con field = value
	// excluyendo opcionalmente un ID. field debe ser name.
	ExistsActive(field, value, excludeID string) (bool, error)
}
