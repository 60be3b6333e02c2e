package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktake-api/internal/application/usecase"
)

// fakeFinder responde ExistsActive según un mapa field:value -> true y
// registra las consultas recibidas para verificar el corte temprano.
type fakeFinder struct {
	existing map[string]bool // clave "field|value"
	err      error
	queries  []string
}

func (f *fakeFinder) ExistsActive(field, value, excludeID string) (bool, error) {
	f.queries = append(f.queries, field)
	if f.err != nil {
		return false, f.err
	}
	return f.existing[field+"|"+value], nil
}

func TestCheckForDuplicates_SinConflictos(t *testing.T) {
	finder := &fakeFinder{existing: map[string]bool{}}

	conflict, err := usecase.CheckForDuplicates(finder, []usecase.DuplicateCheck{
		{Field: "sku", Value: "ABC-1", Required: true, Kind: "DUPLICATE_SKU"},
		{Field: "name", Value: "Camisa", Required: true, Kind: "DUPLICATE_PRODUCT"},
	})

	require.NoError(t, err)
	assert.Nil(t, conflict, "sin registros existentes no debe haber conflicto")
	assert.Equal(t, []string{"sku", "name"}, finder.queries, "debe consultar todas las verificaciones")
}

func TestCheckForDuplicates_CortaEnElPrimerConflicto(t *testing.T) {
	finder := &fakeFinder{existing: map[string]bool{
		"sku|ABC-1":    true,
		"name|Camisa":  true,
		"barcode|7701": true,
	}}

	conflict, err := usecase.CheckForDuplicates(finder, []usecase.DuplicateCheck{
		{Field: "sku", Value: "ABC-1", Required: true, Message: "SKU duplicado", Kind: "DUPLICATE_SKU"},
		{Field: "barcode", Value: "7701", Required: false, Kind: "DUPLICATE_BARCODE"},
		{Field: "name", Value: "Camisa", Required: true, Kind: "DUPLICATE_PRODUCT"},
	})

	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, "DUPLICATE_SKU", conflict.Kind, "el primer conflicto de la lista gana")
	assert.Equal(t, "SKU duplicado", conflict.Message)
	assert.Equal(t, []string{"sku"}, finder.queries, "tras el primer conflicto no debe seguir consultando")
}

func TestCheckForDuplicates_OmiteOpcionalesVacios(t *testing.T) {
	finder := &fakeFinder{existing: map[string]bool{"barcode|": true}}

	conflict, err := usecase.CheckForDuplicates(finder, []usecase.DuplicateCheck{
		{Field: "barcode", Value: "", Required: false, Kind: "DUPLICATE_BARCODE"},
	})

	require.NoError(t, err)
	assert.Nil(t, conflict, "un campo opcional vacío nunca genera conflicto")
	assert.Empty(t, finder.queries, "un campo opcional vacío ni siquiera se consulta")
}

func TestCheckForDuplicates_PropagaErrorDelStorage(t *testing.T) {
	boom := errors.New("conexión perdida")
	finder := &fakeFinder{err: boom}

	conflict, err := usecase.CheckForDuplicates(finder, []usecase.DuplicateCheck{
		{Field: "sku", Value: "ABC-1", Required: true, Kind: "DUPLICATE_SKU"},
	})

	require.ErrorIs(t, err, boom)
	assert.Nil(t, conflict)
}
