package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktake-api/internal/application/dto"
	"github.com/jhoicas/stocktake-api/internal/domain"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/domain/repository"
	"github.com/jhoicas/stocktake-api/pkg/pagination"
)

// ProductUseCase casos de uso CRUD para productos del catálogo, con
// verificación de duplicados antes de escribir y paginación por cursor.
type ProductUseCase struct {
	repo       repository.ProductRepository
	uniqueName bool // regla configurable: nombre único entre productos activos
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, uniqueName bool) *ProductUseCase {
	return &ProductUseCase{repo: repo, uniqueName: uniqueName}
}

// Create crea un producto tras pasar las verificaciones de duplicados.
// Los conflictos y fallos de BD se devuelven como resultado estructurado,
// nunca como error: el error de retorno queda reservado para el futuro.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResult, error) {
	conflict, err := CheckForDuplicates(uc.repo, uc.createChecks(in))
	if err != nil {
		return dto.FailResult[dto.ProductResponse]("no se pudo crear el producto, intente de nuevo", dto.ErrTypeDatabase), nil
	}
	if conflict != nil {
		return dto.FailResult[dto.ProductResponse](conflict.Message, conflict.Kind), nil
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       in.Price,
		Barcode:     in.Barcode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		// Respaldo contra la carrera check-then-insert: el índice único parcial
		// rechaza el insert concurrente y aquí se traduce al mismo resultado.
		return duplicateInsertResult(err, in.SKU, in.Barcode), nil
	}
	return dto.OkResult(toProductResponse(product)), nil
}

// GetByID obtiene un producto activo con sus niveles de stock. nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos activos con búsqueda y paginación por cursor.
// Se pide un registro extra para detectar si hay página siguiente.
func (uc *ProductUseCase) List(in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	limit := pagination.ClampLimit(in.Limit)
	list, err := uc.repo.List(FoldSearchTerm(in.Search), in.Cursor, limit+1)
	if err != nil {
		return nil, err
	}
	page, nextCursor := pagination.Page(list, limit, func(p *entity.Product) string { return p.ID })
	items := make([]dto.ProductResponse, 0, len(page))
	for _, p := range page {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items, NextCursor: nextCursor}, nil
}

// Update actualiza un producto. Re-ejecuta las verificaciones de duplicados
// excluyéndose a sí mismo, solo sobre los campos que cambian.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResult, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return dto.FailResult[dto.ProductResponse]("no se pudo actualizar el producto, intente de nuevo", dto.ErrTypeDatabase), nil
	}
	if product == nil {
		return dto.FailResult[dto.ProductResponse]("producto no encontrado", dto.ErrTypeNotFound), nil
	}

	conflict, err := CheckForDuplicates(uc.repo, uc.updateChecks(id, in))
	if err != nil {
		return dto.FailResult[dto.ProductResponse]("no se pudo actualizar el producto, intente de nuevo", dto.ErrTypeDatabase), nil
	}
	if conflict != nil {
		return dto.FailResult[dto.ProductResponse](conflict.Message, conflict.Kind), nil
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Barcode != nil {
		product.Barcode = in.Barcode
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return duplicateInsertResult(err, product.SKU, product.Barcode), nil
	}
	return dto.OkResult(toProductResponse(product)), nil
}

// Delete marca el producto como borrado (nunca se elimina físicamente).
// nil si no existe.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.SoftDelete(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// createChecks arma las verificaciones de duplicados para un alta.
// El orden decide qué conflicto se reporta primero: SKU, luego código de
// barras, luego nombre.
func (uc *ProductUseCase) createChecks(in dto.CreateProductRequest) []DuplicateCheck {
	return uc.buildChecks(in.SKU, derefOrEmpty(in.Barcode), in.Name, "")
}

// updateChecks arma las verificaciones para un update, excluyendo al propio
// registro y omitiendo campos no enviados.
func (uc *ProductUseCase) updateChecks(id string, in dto.UpdateProductRequest) []DuplicateCheck {
	return uc.buildChecks(derefOrEmpty(in.SKU), derefOrEmpty(in.Barcode), derefOrEmpty(in.Name), id)
}

func (uc *ProductUseCase) buildChecks(sku, barcode, name, excludeID string) []DuplicateCheck {
	required := excludeID == "" // en updates los campos ausentes se omiten
	checks := []DuplicateCheck{
		{
			Field:     "sku",
			Value:     sku,
			Required:  required,
			Message:   fmt.Sprintf("ya existe un producto con el SKU %q", sku),
			Kind:      dto.ErrTypeDuplicateSKU,
			ExcludeID: excludeID,
		},
		{
			Field:     "barcode",
			Value:     barcode,
			Required:  false,
			Message:   fmt.Sprintf("ya existe un producto con el código de barras %q", barcode),
			Kind:      dto.ErrTypeDuplicateBarcode,
			ExcludeID: excludeID,
		},
	}
	if uc.uniqueName {
		checks = append(checks, DuplicateCheck{
			Field:     "name",
			Value:     name,
			Required:  required,
			Message:   fmt.Sprintf("ya existe un producto con el nombre %q", name),
			Kind:      dto.ErrTypeDuplicateProduct,
			ExcludeID: excludeID,
		})
	}
	return checks
}

// duplicateInsertResult traduce una violación de unicidad del storage al
// resultado estructurado; cualquier otro error queda como DATABASE_ERROR.
func duplicateInsertResult(err error, sku string, barcode *string) *dto.ProductResult {
	var dup *domain.DuplicateError
	if errors.As(err, &dup) {
		switch dup.Field {
		case "barcode":
			return dto.FailResult[dto.ProductResponse](
				fmt.Sprintf("ya existe un producto con el código de barras %q", derefOrEmpty(barcode)),
				dto.ErrTypeDuplicateBarcode)
		case "name":
			return dto.FailResult[dto.ProductResponse](
				"ya existe un producto con el mismo nombre", dto.ErrTypeDuplicateProduct)
		default:
			return dto.FailResult[dto.ProductResponse](
				fmt.Sprintf("ya existe un producto con el SKU %q", sku), dto.ErrTypeDuplicateSKU)
		}
	}
	return dto.FailResult[dto.ProductResponse]("no se pudo guardar el producto, intente de nuevo", dto.ErrTypeDatabase)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		Barcode:     p.Barcode,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}
	for _, sl := range p.StockLevels {
		resp.StockLevels = append(resp.StockLevels, toStockLevelResponse(sl))
	}
	return resp
}

func toStockLevelResponse(sl entity.StockLevel) dto.StockLevelResponse {
	out := dto.StockLevelResponse{
		ID:           sl.ID,
		ProductID:    sl.ProductID,
		LocationID:   sl.LocationID,
		Quantity:     sl.Quantity,
		MinThreshold: sl.MinThreshold,
		UpdatedAt:    sl.UpdatedAt,
	}
	if sl.Product != nil {
		out.Product = toProductResponse(sl.Product)
	}
	if sl.Location != nil {
		out.Location = toLocationResponse(sl.Location)
	}
	return out
}
