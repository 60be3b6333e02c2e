package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL
// (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, name, address, contact_person, contact_number, notes, created_at, updated_at, deleted_at`

// Create persiste una nueva ubicación. El índice único parcial sobre name
// rechaza nombres repetidos entre activas.
func (r *LocationRepo) Create(location *entity.InventoryLocation) error {
	query := `
		INSERT INTO inventory_locations (id, name, address, contact_person, contact_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.ContactPerson,
		location.ContactNumber, location.Notes, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación activa con sus niveles de stock (solo de
// productos activos). Devuelve nil, nil si no existe o está borrada.
func (r *LocationRepo) GetByID(id string) (*entity.InventoryLocation, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM inventory_locations WHERE id = $1 AND deleted_at IS NULL`
	var l entity.InventoryLocation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Address, &l.ContactPerson, &l.ContactNumber, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}

	levels, err := r.stockLevelsForLocation(l.ID)
	if err != nil {
		return nil, err
	}
	l.StockLevels = levels
	return &l, nil
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(location *entity.InventoryLocation) error {
	query := `
		UPDATE inventory_locations
		SET name = $2, address = $3, contact_person = $4, contact_number = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.ContactPerson,
		location.ContactNumber, location.Notes, location.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List devuelve todas las ubicaciones activas ordenadas por created_at DESC.
func (r *LocationRepo) List() ([]*entity.InventoryLocation, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM inventory_locations
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryLocation
	for rows.Next() {
		var l entity.InventoryLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.ContactPerson, &l.ContactNumber, &l.Notes,
			&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, l := range list {
		levels, err := r.stockLevelsForLocation(l.ID)
		if err != nil {
			return nil, err
		}
		l.StockLevels = levels
	}
	return list, nil
}

// SoftDelete marca la ubicación como borrada y devuelve la fila actualizada.
// nil, nil si no existe o ya estaba borrada.
func (r *LocationRepo) SoftDelete(id string) (*entity.InventoryLocation, error) {
	query := `
		UPDATE inventory_locations SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + locationColumns
	var l entity.InventoryLocation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Address, &l.ContactPerson, &l.ContactNumber, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete location: %w", err)
	}
	return &l, nil
}

// ExistsActive verifica si existe una ubicación activa con field = value,
// excluyendo opcionalmente un ID. Solo se admite name.
func (r *LocationRepo) ExistsActive(field, value, excludeID string) (bool, error) {
	if field != "name" {
		return false, fmt.Errorf("campo no permitido para búsqueda de duplicados: %s", field)
	}
	query := `
		SELECT EXISTS (
			SELECT 1 FROM inventory_locations
			WHERE name = $1 AND deleted_at IS NULL AND ($2 = '' OR id <> NULLIF($2, '')::uuid)
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check duplicate name: %w", err)
	}
	return exists, nil
}

// stockLevelsForLocation carga los niveles de la ubicación con su producto,
// solo de productos activos.
func (r *LocationRepo) stockLevelsForLocation(locationID string) ([]entity.StockLevel, error) {
	query := `
		SELECT sl.id, sl.product_id, sl.location_id, sl.quantity, sl.min_threshold, sl.updated_at,
		       p.id, p.name, p.sku, p.description, p.price, p.barcode, p.created_at, p.updated_at, p.deleted_at
		FROM stock_levels sl
		JOIN products p ON p.id = sl.product_id AND p.deleted_at IS NULL
		WHERE sl.location_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list stock levels for location: %w", err)
	}
	defer rows.Close()

	var levels []entity.StockLevel
	for rows.Next() {
		var sl entity.StockLevel
		var p entity.Product
		if err := rows.Scan(&sl.ID, &sl.ProductID, &sl.LocationID, &sl.Quantity, &sl.MinThreshold, &sl.UpdatedAt,
			&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Barcode,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		sl.Product = &p
		levels = append(levels, sl)
	}
	return levels, rows.Err()
}
