package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Barcode     *string         `json:"barcode"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU         *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Barcode     *string          `json:"barcode"`
}

// ListProductsRequest parámetros de product.getAll.
type ListProductsRequest struct {
	Search string `query:"search"`
	Limit  int    `query:"limit" validate:"min=1,max=100"`
	Cursor string `query:"cursor"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	SKU         string               `json:"sku"`
	Description string               `json:"description,omitempty"`
	Price       decimal.Decimal      `json:"price"`
	Barcode     *string              `json:"barcode"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	DeletedAt   *time.Time           `json:"deleted_at"`
	StockLevels []StockLevelResponse `json:"stock_levels,omitempty"`
}

// ProductListResponse página de productos con cursor de continuación.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	NextCursor *string           `json:"nextCursor"`
}

// ProductResult resultado estructurado de create/update de productos.
type ProductResult = MutationResult[ProductResponse]
