package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/stocktake-api/internal/domain"
)

// uniqueViolation verifica si un error es una violación de constraint único
// (23505) y devuelve el nombre del constraint violado.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// duplicateError traduce una violación de unicidad al error de dominio con el
// campo en conflicto, deducido del nombre del índice (products_sku_active_uq,
// products_barcode_active_uq, locations_name_active_uq). Devuelve nil si el
// error no es una violación de unicidad.
func duplicateError(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	switch {
	case strings.Contains(constraint, "sku"):
		return &domain.DuplicateError{Field: "sku"}
	case strings.Contains(constraint, "barcode"):
		return &domain.DuplicateError{Field: "barcode"}
	case strings.Contains(constraint, "name"):
		return &domain.DuplicateError{Field: "name"}
	default:
		return domain.ErrDuplicate
	}
}
