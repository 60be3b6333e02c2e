package postgres_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktake-api/internal/infrastructure/postgres"
)

var stocktakeCols = []string{
	"id", "location_id", "started_at", "completed_at", "counted_by", "notes",
	"l_id", "l_name", "l_address", "l_contact_person", "l_contact_number", "l_notes",
	"l_created_at", "l_updated_at", "l_deleted_at",
}

var stocktakeItemCols = []string{
	"id", "stocktake_id", "product_sku", "product_name", "system_quantity", "counted_quantity", "variance",
}

func newStocktakeRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.StocktakeRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewStocktakeRepository(mock)
}

// El filtro por ubicación es opcional y viaja como texto; la comparación con
// location_id (UUID) debe castear con NULLIF(...)::uuid.
func TestStocktakeRepoList_FiltroDeUbicacionCasteado(t *testing.T) {
	mock, repo := newStocktakeRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`($1 = '' OR s.location_id = NULLIF($1, '')::uuid)`)).
		WithArgs("33333333-3333-3333-3333-333333333333").
		WillReturnRows(pgxmock.NewRows(stocktakeCols).AddRow(
			"44444444-4444-4444-4444-444444444444", "33333333-3333-3333-3333-333333333333",
			now, nil, "operario", "",
			"33333333-3333-3333-3333-333333333333", "Bodega Norte", "", "", "", "",
			now, now, nil,
		))
	mock.ExpectQuery("FROM stocktake_items WHERE stocktake_id = ").
		WithArgs("44444444-4444-4444-4444-444444444444").
		WillReturnRows(pgxmock.NewRows(stocktakeItemCols).
			AddRow("55555555-5555-5555-5555-555555555555", "44444444-4444-4444-4444-444444444444",
				"TSHIRT-001", "Camisa clásica", 10, nil, nil))

	list, err := repo.List("33333333-3333-3333-3333-333333333333")

	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Items, 1)
	assert.Equal(t, "TSHIRT-001", list[0].Items[0].ProductSKU)
	assert.Nil(t, list[0].CompletedAt, "sesión abierta no tiene completed_at")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStocktakeRepoList_SinFiltro(t *testing.T) {
	mock, repo := newStocktakeRepo(t)

	// Sin filtro el parámetro viaja vacío; la consulta debe seguir siendo válida.
	mock.ExpectQuery(regexp.QuoteMeta(`NULLIF($1, '')::uuid`)).
		WithArgs("").
		WillReturnRows(pgxmock.NewRows(stocktakeCols))

	list, err := repo.List("")

	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}
