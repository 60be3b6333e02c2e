package repository

import "github.com/jhoicas/stocktake-api/internal/domain/entity"

// StocktakeRepository define el puerto de persistencia para las sesiones de
// conteo físico y sus items.
type StocktakeRepository interface {
	// Create persiste la sesión junto con todos sus items (snapshot).
	Create(stocktake *entity.Stocktake) error
	// GetByID obtiene la sesión con su ubicación e items, o nil, nil si no existe.
	GetByID(id string) (*entity.Stocktake, error)
	// List devuelve las sesiones ordenadas por started_at DESC, con ubicación e
	// items. locationID vacío lista todas.
	List(locationID string) ([]*entity.Stocktake, error)
	// GetItem obtiene un item por ID o nil, nil si no existe.
	GetItem(itemID string) (*entity.StocktakeItem, error)
	// UpdateItemCount persiste la cantidad contada y la variación de un item.
	UpdateItemCount(itemID string, countedQuantity, variance int) error
	// Complete marca la sesión como finalizada.
	Complete(id string) error
	// Delete elimina la sesión y sus items (borrado físico).
	Delete(id string) error
}
