package repository

import "github.com/jhoicas/stocktake-api/internal/domain/entity"

// StockLevelRepository define el puerto para los niveles de stock por
// producto×ubicación. Usado también dentro de transacciones (finalización de conteos).
type StockLevelRepository interface {
	// ListByLocation devuelve los niveles de la ubicación cuyos productos
	// están activos, con el producto cargado.
	ListByLocation(locationID string) ([]*entity.StockLevel, error)
	// Upsert inserta o actualiza el nivel por (productID, locationID).
	Upsert(level *entity.StockLevel) error
	// SetQuantity sobreescribe la cantidad del nivel (productID, locationID)
	// si existe. No crea filas nuevas.
	SetQuantity(productID, locationID string, quantity int) error
	// Get devuelve el nivel por (productID, locationID) o nil, nil si no existe.
	Get(productID, locationID string) (*entity.StockLevel, error)
}
