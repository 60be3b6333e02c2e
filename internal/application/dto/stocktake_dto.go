package dto

import "time"

// CreateStocktakeRequest entrada para iniciar una sesión de conteo físico.
type CreateStocktakeRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	CountedBy  string `json:"counted_by"`
	Notes      string `json:"notes"`
}

// UpdateItemCountRequest entrada para registrar la cantidad contada de un item.
type UpdateItemCountRequest struct {
	CountedQuantity int `json:"counted_quantity" validate:"min=0"`
}

// StocktakeItemResponse línea de conteo con la variación calculada.
type StocktakeItemResponse struct {
	ID              string `json:"id"`
	StocktakeID     string `json:"stocktake_id"`
	ProductSKU      string `json:"product_sku"`
	ProductName     string `json:"product_name"`
	SystemQuantity  int    `json:"system_quantity"`
	CountedQuantity *int   `json:"counted_quantity"`
	Variance        *int   `json:"variance"`
}

// StocktakeResponse sesión de conteo con sus items.
type StocktakeResponse struct {
	ID          string                  `json:"id"`
	LocationID  string                  `json:"location_id"`
	StartedAt   time.Time               `json:"started_at"`
	CompletedAt *time.Time              `json:"completed_at"`
	CountedBy   string                  `json:"counted_by,omitempty"`
	Notes       string                  `json:"notes,omitempty"`
	Items       []StocktakeItemResponse `json:"items"`
	Location    *LocationResponse       `json:"location,omitempty"`
}

// StocktakeListResponse listado de sesiones de conteo.
type StocktakeListResponse struct {
	Stocktakes []StocktakeResponse `json:"stocktakes"`
}
