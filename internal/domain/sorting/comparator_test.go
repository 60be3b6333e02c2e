package sorting_test

import (
	"slices"
	"testing"
	"time"

	"github.com/jhoicas/stocktake-api/internal/domain/sorting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type row struct {
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	DeletedAt *time.Time
}

func TestComparator_FechasDescendente(t *testing.T) {
	d1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	cmp := sorting.Comparator[row](sorting.Desc, func(r row) any { return r.CreatedAt })

	rows := []row{{Name: "viejo", CreatedAt: d1}, {Name: "nuevo", CreatedAt: d2}}
	slices.SortStableFunc(rows, cmp)

	assert.Equal(t, "nuevo", rows[0].Name, "descendente: la fecha mayor va primero")
	assert.Equal(t, "viejo", rows[1].Name)
}

func TestComparator_FechasAscendente(t *testing.T) {
	d1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	cmp := sorting.Comparator[row](sorting.Asc, func(r row) any { return r.CreatedAt })

	rows := []row{{Name: "nuevo", CreatedAt: d2}, {Name: "viejo", CreatedAt: d1}}
	slices.SortStableFunc(rows, cmp)

	assert.Equal(t, "viejo", rows[0].Name, "ascendente: la fecha menor va primero")
}

func TestComparator_IgualesDevuelveCero(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cmp := sorting.Comparator[row](sorting.Desc, func(r row) any { return r.CreatedAt })
	assert.Zero(t, cmp(row{CreatedAt: d}, row{CreatedAt: d}), "valores iguales deben comparar 0")

	cmpName := sorting.Comparator[row](sorting.Asc, func(r row) any { return r.Name })
	assert.Zero(t, cmpName(row{Name: "x"}, row{Name: "x"}))
}

func TestComparator_Textos(t *testing.T) {
	cmp := sorting.Comparator[row](sorting.Asc, func(r row) any { return r.Name })
	rows := []row{{Name: "camisa"}, {Name: "abrigo"}, {Name: "botas"}}
	slices.SortStableFunc(rows, cmp)
	assert.Equal(t, []string{"abrigo", "botas", "camisa"}, []string{rows[0].Name, rows[1].Name, rows[2].Name})
}

func TestComparator_Decimales(t *testing.T) {
	cmp := sorting.Comparator[row](sorting.Desc, func(r row) any { return r.Price })
	rows := []row{
		{Name: "barato", Price: decimal.NewFromFloat(9.99)},
		{Name: "caro", Price: decimal.NewFromFloat(199.99)},
	}
	slices.SortStableFunc(rows, cmp)
	assert.Equal(t, "caro", rows[0].Name)
}

func TestComparator_NulosPrimeroEnAscendente(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cmp := sorting.Comparator[row](sorting.Asc, func(r row) any { return r.DeletedAt })

	rows := []row{{Name: "borrado", DeletedAt: &d}, {Name: "activo", DeletedAt: nil}}
	slices.SortStableFunc(rows, cmp)

	assert.Equal(t, "activo", rows[0].Name, "nil ordena antes que cualquier fecha en ascendente")
}

func TestComparator_EstableConSortStable(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cmp := sorting.Comparator[row](sorting.Asc, func(r row) any { return r.CreatedAt })

	rows := []row{
		{Name: "primero", CreatedAt: d},
		{Name: "segundo", CreatedAt: d},
		{Name: "tercero", CreatedAt: d},
	}
	slices.SortStableFunc(rows, cmp)

	// Con sort estable los empates conservan el orden de llegada.
	assert.Equal(t, []string{"primero", "segundo", "tercero"},
		[]string{rows[0].Name, rows[1].Name, rows[2].Name})
}
