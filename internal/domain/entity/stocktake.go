package entity

import "time"

// Stocktake es una sesión de conteo físico sobre una ubicación.
// Estados: abierta (CompletedAt == nil) → finalizada (CompletedAt != nil).
// Los items se crean como snapshot al iniciar y su número no cambia después.
type Stocktake struct {
	ID          string
	LocationID  string
	StartedAt   time.Time
	CompletedAt *time.Time
	CountedBy   string
	Notes       string

	Items    []StocktakeItem
	Location *InventoryLocation
}

// IsCompleted indica si la sesión ya fue finalizada.
func (s *Stocktake) IsCompleted() bool {
	return s.CompletedAt != nil
}

// StocktakeItem es una línea del conteo: cantidad del sistema al momento del
// snapshot (inmutable) contra la cantidad contada por el operario.
// Variance = CountedQuantity - SystemQuantity; nil hasta que se registre un conteo.
type StocktakeItem struct {
	ID              string
	StocktakeID     string
	ProductSKU      string // denormalizado al momento del snapshot
	ProductName     string
	SystemQuantity  int
	CountedQuantity *int
	Variance        *int
}
