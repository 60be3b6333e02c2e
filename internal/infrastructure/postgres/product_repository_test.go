package postgres_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktake-api/internal/domain"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/infrastructure/postgres"
)

var productCols = []string{"id", "name", "sku", "description", "price", "barcode", "created_at", "updated_at", "deleted_at"}

var stockLevelCols = []string{
	"id", "product_id", "location_id", "quantity", "min_threshold", "updated_at",
	"l_id", "l_name", "l_address", "l_contact_person", "l_contact_number", "l_notes",
	"l_created_at", "l_updated_at", "l_deleted_at",
}

func productRow(rows *pgxmock.Rows, id, name, sku string, created time.Time) *pgxmock.Rows {
	return rows.AddRow(id, name, sku, "", decimal.NewFromFloat(19.99), nil, created, created, nil)
}

func newProductRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.ProductRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, postgres.NewProductRepository(mock)
}

// El parámetro de cursor viaja como texto y la columna id es UUID: la consulta
// debe castear explícitamente (NULLIF(...)::uuid) para que el parse no falle.
func TestProductRepoList_CursorCasteadoAUUID(t *testing.T) {
	mock, repo := newProductRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`(SELECT created_at, id FROM products WHERE id = NULLIF($2, '')::uuid)`)).
		WithArgs("camisa", "11111111-1111-1111-1111-111111111111", 3).
		WillReturnRows(productRow(productRow(pgxmock.NewRows(productCols),
			"11111111-1111-1111-1111-111111111111", "Camisa clásica", "TSHIRT-001", now),
			"22222222-2222-2222-2222-222222222222", "Camisa polo", "TSHIRT-002", now.Add(-time.Hour)))
	mock.ExpectQuery("FROM stock_levels sl").
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnRows(pgxmock.NewRows(stockLevelCols))
	mock.ExpectQuery("FROM stock_levels sl").
		WithArgs("22222222-2222-2222-2222-222222222222").
		WillReturnRows(pgxmock.NewRows(stockLevelCols))

	list, err := repo.List("camisa", "11111111-1111-1111-1111-111111111111", 3)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "TSHIRT-001", list[0].SKU, "la página arranca en el registro del cursor")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepoList_SinCursorNiBusqueda(t *testing.T) {
	mock, repo := newProductRepo(t)

	// Sin cursor los parámetros viajan vacíos; la consulta debe seguir siendo válida.
	mock.ExpectQuery(regexp.QuoteMeta(`NULLIF($2, '')::uuid`)).
		WithArgs("", "", 11).
		WillReturnRows(pgxmock.NewRows(productCols))

	list, err := repo.List("", "", 11)

	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepoExistsActive_ExcluyeIDCasteado(t *testing.T) {
	mock, repo := newProductRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`($2 = '' OR id <> NULLIF($2, '')::uuid)`)).
		WithArgs("TSHIRT-001", "11111111-1111-1111-1111-111111111111").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsActive("sku", "TSHIRT-001", "11111111-1111-1111-1111-111111111111")

	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepoExistsActive_CampoNoPermitido(t *testing.T) {
	_, repo := newProductRepo(t)

	_, err := repo.ExistsActive("description", "x", "")

	assert.Error(t, err, "solo sku, barcode y name son consultables")
}

func TestProductRepoCreate_TraduceViolacionDeUnicidad(t *testing.T) {
	cases := []struct {
		constraint string
		wantField  string
	}{
		{"products_sku_active_uq", "sku"},
		{"products_barcode_active_uq", "barcode"},
	}
	for _, c := range cases {
		mock, repo := newProductRepo(t)
		mock.ExpectExec("INSERT INTO products").
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: c.constraint})

		err := repo.Create(&entity.Product{
			ID: "11111111-1111-1111-1111-111111111111", Name: "Camisa", SKU: "TSHIRT-001",
			Price: decimal.NewFromFloat(19.99),
		})

		require.Error(t, err)
		var dup *domain.DuplicateError
		require.ErrorAs(t, err, &dup, "constraint %s", c.constraint)
		assert.Equal(t, c.wantField, dup.Field)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		require.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestProductRepoCreate_ErrorGenericoNoSeTraduce(t *testing.T) {
	mock, repo := newProductRepo(t)
	boom := errors.New("conexión perdida")
	mock.ExpectExec("INSERT INTO products").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(boom)

	err := repo.Create(&entity.Product{ID: "11111111-1111-1111-1111-111111111111"})

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductRepoGetByID_NoExiste(t *testing.T) {
	mock, repo := newProductRepo(t)
	mock.ExpectQuery("FROM products WHERE id = ").
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnError(pgx.ErrNoRows)

	p, err := repo.GetByID("11111111-1111-1111-1111-111111111111")

	require.NoError(t, err, "sin filas no es un error")
	assert.Nil(t, p)
}
