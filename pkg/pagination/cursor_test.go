package pagination_test

import (
	"fmt"
	"testing"

	"github.com/jhoicas/stocktake-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct{ ID string }

func makeRecs(n int) []rec {
	out := make([]rec, n)
	for i := range out {
		out[i] = rec{ID: fmt.Sprintf("id-%d", i+1)}
	}
	return out
}

// Recorre 7 registros con límite 3: 3+cursor, 3+cursor, 1 sin cursor.
func TestPage_SieteRegistrosLimiteTres(t *testing.T) {
	all := makeRecs(7)
	limit := 3
	id := func(r rec) string { return r.ID }

	// El repositorio trae limit+1; simular las tres llamadas.
	page1, cursor1 := pagination.Page(all[0:4], limit, id)
	require.NotNil(t, cursor1, "primera página debe tener cursor")
	assert.Len(t, page1, 3)
	assert.Equal(t, "id-4", *cursor1, "el cursor es el ID del registro descartado")

	page2, cursor2 := pagination.Page(all[3:7], limit, id)
	require.NotNil(t, cursor2, "segunda página debe tener cursor")
	assert.Len(t, page2, 3)

	page3, cursor3 := pagination.Page(all[6:7], limit, id)
	assert.Nil(t, cursor3, "última página no tiene cursor")
	assert.Len(t, page3, 1)
}

func TestPage_ExactoAlLimiteSinCursor(t *testing.T) {
	page, cursor := pagination.Page(makeRecs(3), 3, func(r rec) string { return r.ID })
	assert.Nil(t, cursor)
	assert.Len(t, page, 3)
}

func TestPage_Vacia(t *testing.T) {
	page, cursor := pagination.Page([]rec{}, 10, func(r rec) string { return r.ID })
	assert.Nil(t, cursor)
	assert.Empty(t, page)
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, pagination.DefaultLimit},
		{-5, pagination.DefaultLimit},
		{1, 1},
		{50, 50},
		{100, 100},
		{500, pagination.MaxLimit},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pagination.ClampLimit(c.in), "limit=%d", c.in)
	}
}

func TestCursorStack_PushPop(t *testing.T) {
	var s pagination.CursorStack

	s1 := s.Push("a").Push("b")
	assert.Equal(t, 2, s1.Len())

	s2, top, ok := s1.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", top)
	assert.Equal(t, 1, s2.Len())
}

// Pop no debe mutar la pila original: el historial se pasa por valor.
func TestCursorStack_Inmutable(t *testing.T) {
	var s pagination.CursorStack
	s1 := s.Push("a").Push("b")

	_, _, _ = s1.Pop()
	assert.Equal(t, 2, s1.Len(), "Pop no debe modificar la pila sobre la que se llama")

	s2 := s1.Push("c")
	assert.Equal(t, 2, s1.Len(), "Push no debe modificar la pila original")
	assert.Equal(t, 3, s2.Len())

	top, ok := s1.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", top)
}

func TestCursorStack_PopVacia(t *testing.T) {
	var s pagination.CursorStack
	s2, top, ok := s.Pop()
	assert.False(t, ok)
	assert.Empty(t, top)
	assert.Zero(t, s2.Len())
}
