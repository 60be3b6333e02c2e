package entity

import "time"

// InventoryLocation representa una bodega o punto de venta donde se almacena stock.
// Name es único entre ubicaciones activas. Borrado lógico vía DeletedAt.
type InventoryLocation struct {
	ID            string
	Name          string
	Address       string
	ContactPerson string
	ContactNumber string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time

	StockLevels []StockLevel
}
