package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. SKU es único entre productos activos;
// Barcode es único solo si está presente. DeletedAt marca el borrado lógico:
// los productos nunca se eliminan físicamente.
type Product struct {
	ID          string
	Name        string
	SKU         string // único entre productos no borrados
	Description string
	Price       decimal.Decimal // precio de venta, siempre > 0
	Barcode     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// StockLevels se carga solo en consultas que lo piden (getAll/getById).
	StockLevels []StockLevel
}

// IsDeleted indica si el producto fue borrado lógicamente.
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
