package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/domain/repository"
)

var _ repository.StocktakeRepository = (*StocktakeRepo)(nil)

// StocktakeRepo implementación de StocktakeRepository sobre PostgreSQL
// (usable con pool o tx).
type StocktakeRepo struct {
	q Querier
}

// NewStocktakeRepository construye el adaptador de sesiones de conteo.
// Pasar pool o tx (Querier).
func NewStocktakeRepository(q Querier) *StocktakeRepo {
	return &StocktakeRepo{q: q}
}

// Create persiste la sesión junto con todos sus items. Llamar dentro de una
// transacción para que el snapshot sea atómico.
func (r *StocktakeRepo) Create(stocktake *entity.Stocktake) error {
	query := `
		INSERT INTO stocktakes (id, location_id, started_at, counted_by, notes)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		stocktake.ID, stocktake.LocationID, stocktake.StartedAt, stocktake.CountedBy, stocktake.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert stocktake: %w", err)
	}

	for _, item := range stocktake.Items {
		itemQuery := `
			INSERT INTO stocktake_items (id, stocktake_id, product_sku, product_name, system_quantity)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.StocktakeID, item.ProductSKU, item.ProductName, item.SystemQuantity,
		); err != nil {
			return fmt.Errorf("insert stocktake item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la sesión con su ubicación e items, o nil, nil si no existe.
func (r *StocktakeRepo) GetByID(id string) (*entity.Stocktake, error) {
	query := `
		SELECT s.id, s.location_id, s.started_at, s.completed_at, s.counted_by, s.notes,
		       l.id, l.name, l.address, l.contact_person, l.contact_number, l.notes,
		       l.created_at, l.updated_at, l.deleted_at
		FROM stocktakes s
		JOIN inventory_locations l ON l.id = s.location_id
		WHERE s.id = $1`
	var s entity.Stocktake
	var loc entity.InventoryLocation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.LocationID, &s.StartedAt, &s.CompletedAt, &s.CountedBy, &s.Notes,
		&loc.ID, &loc.Name, &loc.Address, &loc.ContactPerson, &loc.ContactNumber, &loc.Notes,
		&loc.CreatedAt, &loc.UpdatedAt, &loc.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stocktake: %w", err)
	}
	s.Location = &loc

	items, err := r.itemsForStocktake(s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// List devuelve las sesiones ordenadas por started_at DESC con ubicación e
// items. locationID vacío lista todas.
func (r *StocktakeRepo) List(locationID string) ([]*entity.Stocktake, error) {
	query := `
		SELECT s.id, s.location_id, s.started_at, s.completed_at, s.counted_by, s.notes,
		       l.id, l.name, l.address, l.contact_person, l.contact_number, l.notes,
		       l.created_at, l.updated_at, l.deleted_at
		FROM stocktakes s
		JOIN inventory_locations l ON l.id = s.location_id
		WHERE ($1 = '' OR s.location_id = NULLIF($1, '')::uuid)
		ORDER BY s.started_at DESC, s.id DESC`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list stocktakes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stocktake
	for rows.Next() {
		var s entity.Stocktake
		var loc entity.InventoryLocation
		if err := rows.Scan(&s.ID, &s.LocationID, &s.StartedAt, &s.CompletedAt, &s.CountedBy, &s.Notes,
			&loc.ID, &loc.Name, &loc.Address, &loc.ContactPerson, &loc.ContactNumber, &loc.Notes,
			&loc.CreatedAt, &loc.UpdatedAt, &loc.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan stocktake: %w", err)
		}
		s.Location = &loc
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range list {
		items, err := r.itemsForStocktake(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

// GetItem obtiene un item por ID o nil, nil si no existe.
func (r *StocktakeRepo) GetItem(itemID string) (*entity.StocktakeItem, error) {
	query := `
		SELECT id, stocktake_id, product_sku, product_name, system_quantity, counted_quantity, variance
		FROM stocktake_items WHERE id = $1`
	var item entity.StocktakeItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&item.ID, &item.StocktakeID, &item.ProductSKU, &item.ProductName,
		&item.SystemQuantity, &item.CountedQuantity, &item.Variance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stocktake item: %w", err)
	}
	return &item, nil
}

// UpdateItemCount persiste la cantidad contada y la variación de un item.
func (r *StocktakeRepo) UpdateItemCount(itemID string, countedQuantity, variance int) error {
	query := `
		UPDATE stocktake_items SET counted_quantity = $2, variance = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, itemID, countedQuantity, variance)
	if err != nil {
		return fmt.Errorf("update stocktake item count: %w", err)
	}
	return nil
}

// Complete marca la sesión como finalizada.
func (r *StocktakeRepo) Complete(id string) error {
	query := `UPDATE stocktakes SET completed_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("complete stocktake: %w", err)
	}
	return nil
}

// Delete elimina la sesión; los items caen en cascada.
func (r *StocktakeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stocktakes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stocktake: %w", err)
	}
	return nil
}

func (r *StocktakeRepo) itemsForStocktake(stocktakeID string) ([]entity.StocktakeItem, error) {
	query := `
		SELECT id, stocktake_id, product_sku, product_name, system_quantity, counted_quantity, variance
		FROM stocktake_items WHERE stocktake_id = $1
		ORDER BY product_name, id`
	rows, err := r.q.Query(context.Background(), query, stocktakeID)
	if err != nil {
		return nil, fmt.Errorf("list stocktake items: %w", err)
	}
	defer rows.Close()

	var items []entity.StocktakeItem
	for rows.Next() {
		var item entity.StocktakeItem
		if err := rows.Scan(&item.ID, &item.StocktakeID, &item.ProductSKU, &item.ProductName,
			&item.SystemQuantity, &item.CountedQuantity, &item.Variance); err != nil {
			return nil, fmt.Errorf("scan stocktake item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
