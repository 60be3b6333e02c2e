package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, sku, description, price, barcode, created_at, updated_at, deleted_at`

// Create persiste un nuevo producto. Una violación de los índices únicos
// parciales (sku/barcode entre activos) se traduce a DuplicateError.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, description, price, barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Description,
		product.Price, product.Barcode, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo con sus niveles de stock (solo de
// ubicaciones activas). Devuelve nil, nil si no existe o está borrado.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND deleted_at IS NULL`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Barcode,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	levels, err := r.stockLevelsForProduct(p.ID)
	if err != nil {
		return nil, err
	}
	p.StockLevels = levels
	return &p, nil
}

// GetBySKU busca por SKU sin filtrar borrados: la finalización de conteos
// resuelve items por su SKU denormalizado aunque el producto ya no esté activo.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE sku = $1
		ORDER BY (deleted_at IS NULL) DESC, created_at DESC
		LIMIT 1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Barcode,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, sku = $3, description = $4, price = $5, barcode = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Description,
		product.Price, product.Barcode, product.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List devuelve hasta limit productos activos ordenados por
// (created_at DESC, id DESC). El cursor es el ID del primer registro de la
// página pedida: la consulta arranca en él, inclusive. search llega
// normalizado (minúsculas, sin tildes) y filtra por nombre o SKU vía unaccent.
func (r *ProductRepo) List(search, cursor string, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.deleted_at IS NULL
		  AND ($1 = '' OR unaccent(lower(p.name)) LIKE '%' || $1 || '%' OR unaccent(lower(p.sku)) LIKE '%' || $1 || '%')
		  AND ($2 = '' OR (p.created_at, p.id) <= (SELECT created_at, id FROM products WHERE id = NULLIF($2, '')::uuid))
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, search, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Barcode,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range list {
		levels, err := r.stockLevelsForProduct(p.ID)
		if err != nil {
			return nil, err
		}
		p.StockLevels = levels
	}
	return list, nil
}

// SoftDelete marca el producto como borrado y devuelve la fila actualizada.
// nil, nil si no existe o ya estaba borrado.
func (r *ProductRepo) SoftDelete(id string) (*entity.Product, error) {
	query := `
		UPDATE products SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + productColumns
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Barcode,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete product: %w", err)
	}
	return &p, nil
}

// ExistsActive verifica si existe un producto activo con field = value,
// excluyendo opcionalmente un ID. field se valida contra una lista blanca
// de columnas.
func (r *ProductRepo) ExistsActive(field, value, excludeID string) (bool, error) {
	var column string
	switch field {
	case "sku":
		column = "sku"
	case "barcode":
		column = "barcode"
	case "name":
		column = "name"
	default:
		return false, fmt.Errorf("campo no permitido para búsqueda de duplicados: %s", field)
	}
	query := `
		SELECT EXISTS (
			SELECT 1 FROM products
			WHERE ` + column + ` = $1 AND deleted_at IS NULL AND ($2 = '' OR id <> NULLIF($2, '')::uuid)
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check duplicate %s: %w", field, err)
	}
	return exists, nil
}

// stockLevelsForProduct carga los niveles del producto con su ubicación,
// solo de ubicaciones activas.
func (r *ProductRepo) stockLevelsForProduct(productID string) ([]entity.StockLevel, error) {
	query := `
		SELECT sl.id, sl.product_id, sl.location_id, sl.quantity, sl.min_threshold, sl.updated_at,
		       l.id, l.name, l.address, l.contact_person, l.contact_number, l.notes,
		       l.created_at, l.updated_at, l.deleted_at
		FROM stock_levels sl
		JOIN inventory_locations l ON l.id = sl.location_id AND l.deleted_at IS NULL
		WHERE sl.product_id = $1
		ORDER BY l.name`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock levels for product: %w", err)
	}
	defer rows.Close()

	var levels []entity.StockLevel
	for rows.Next() {
		var sl entity.StockLevel
		var loc entity.InventoryLocation
		if err := rows.Scan(&sl.ID, &sl.ProductID, &sl.LocationID, &sl.Quantity, &sl.MinThreshold, &sl.UpdatedAt,
			&loc.ID, &loc.Name, &loc.Address, &loc.ContactPerson, &loc.ContactNumber, &loc.Notes,
			&loc.CreatedAt, &loc.UpdatedAt, &loc.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		sl.Location = &loc
		levels = append(levels, sl)
	}
	return levels, rows.Err()
}
