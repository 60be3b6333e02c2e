package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL
// (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador de niveles de stock.
// Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// ListByLocation devuelve los niveles de la ubicación cuyos productos están
// activos, con el producto cargado (para el snapshot del conteo).
func (r *StockLevelRepo) ListByLocation(locationID string) ([]*entity.StockLevel, error) {
	query := `
		SELECT sl.id, sl.product_id, sl.location_id, sl.quantity, sl.min_threshold, sl.updated_at,
		       p.id, p.name, p.sku, p.description, p.price, p.barcode, p.created_at, p.updated_at, p.deleted_at
		FROM stock_levels sl
		JOIN products p ON p.id = sl.product_id AND p.deleted_at IS NULL
		WHERE sl.location_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()

	var levels []*entity.StockLevel
	for rows.Next() {
		var sl entity.StockLevel
		var p entity.Product
		if err := rows.Scan(&sl.ID, &sl.ProductID, &sl.LocationID, &sl.Quantity, &sl.MinThreshold, &sl.UpdatedAt,
			&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.Barcode,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		sl.Product = &p
		levels = append(levels, &sl)
	}
	return levels, rows.Err()
}

// Upsert inserta o actualiza el nivel por (product_id, location_id).
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (id, product_id, location_id, quantity, min_threshold, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, min_threshold = EXCLUDED.min_threshold, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		level.ID, level.ProductID, level.LocationID, level.Quantity, level.MinThreshold,
	)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// SetQuantity sobreescribe la cantidad del nivel (product_id, location_id) si
// existe; no crea filas nuevas. Usado por la finalización de conteos.
func (r *StockLevelRepo) SetQuantity(productID, locationID string, quantity int) error {
	query := `
		UPDATE stock_levels SET quantity = $3, updated_at = now()
		WHERE product_id = $1 AND location_id = $2`
	_, err := r.q.Exec(context.Background(), query, productID, locationID, quantity)
	if err != nil {
		return fmt.Errorf("set stock level quantity: %w", err)
	}
	return nil
}

// Get devuelve el nivel por (product_id, location_id) o nil, nil si no existe.
func (r *StockLevelRepo) Get(productID, locationID string) (*entity.StockLevel, error) {
	query := `
		SELECT id, product_id, location_id, quantity, min_threshold, updated_at
		FROM stock_levels WHERE product_id = $1 AND location_id = $2`
	var sl entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&sl.ID, &sl.ProductID, &sl.LocationID, &sl.Quantity, &sl.MinThreshold, &sl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &sl, nil
}
