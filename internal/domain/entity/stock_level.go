package entity

import "time"

// StockLevel es la entidad intermedia producto×ubicación. Única por
// (ProductID, LocationID); Quantity nunca es negativa.
type StockLevel struct {
	ID           string
	ProductID    string
	LocationID   string
	Quantity     int
	MinThreshold *int
	UpdatedAt    time.Time

	// Relaciones opcionales según la consulta.
	Product  *Product
	Location *InventoryLocation
}
