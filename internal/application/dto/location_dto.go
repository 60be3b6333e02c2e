package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación de inventario.
type CreateLocationRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	Notes         string `json:"notes"`
}

// UpdateLocationRequest entrada para actualizar una ubicación (campos opcionales).
type UpdateLocationRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contact_person"`
	ContactNumber *string `json:"contact_number"`
	Notes         *string `json:"notes"`
}

// ListLocationsRequest parámetros de location.getAll (ordenamiento en servidor).
type ListLocationsRequest struct {
	Sort  string `query:"sort"`  // name | created_at
	Order string `query:"order"` // asc | desc
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Address       string               `json:"address,omitempty"`
	ContactPerson string               `json:"contact_person,omitempty"`
	ContactNumber string               `json:"contact_number,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     *time.Time           `json:"deleted_at"`
	StockLevels   []StockLevelResponse `json:"stock_levels,omitempty"`
}

// LocationListResponse listado de ubicaciones.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// LocationResult resultado estructurado de create/update de ubicaciones.
type LocationResult = MutationResult[LocationResponse]

// UpsertStockLevelRequest entrada para editar directamente un nivel de stock.
type UpsertStockLevelRequest struct {
	Quantity     int  `json:"quantity" validate:"min=0"`
	MinThreshold *int `json:"min_threshold" validate:"omitempty,min=0"`
}

// StockLevelResponse nivel de stock producto×ubicación.
type StockLevelResponse struct {
	ID           string            `json:"id"`
	ProductID    string            `json:"product_id"`
	LocationID   string            `json:"location_id"`
	Quantity     int               `json:"quantity"`
	MinThreshold *int              `json:"min_threshold"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Product      *ProductResponse  `json:"product,omitempty"`
	Location     *LocationResponse `json:"location,omitempty"`
}
