package pagination

// Paginación por cursor: el repositorio trae limit+1 registros ordenados por
// una clave estable descendente y Page descarta el registro extra, usando su
// identificador como cursor de la página siguiente.

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ClampLimit acota el tamaño de página a [1, MaxLimit]; cero o negativo usa el default.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page recorta una lista traída con limit+1 elementos. Si sobra un elemento,
// lo descarta y devuelve su identificador como cursor de la siguiente página;
// si no, el cursor es nil (última página).
func Page[T any](items []T, limit int, id func(T) string) ([]T, *string) {
	if len(items) <= limit {
		return items, nil
	}
	next := id(items[limit])
	cursor := next
	return items[:limit], &cursor
}

// CursorStack es la pila de cursores vistos, para "página anterior".
// Inmutable: Push y Pop devuelven una pila nueva sin tocar la original,
// de modo que el historial pueda pasarse por transiciones de estado normales.
type CursorStack struct {
	cursors []string
}

// Push devuelve una pila con el cursor agregado al tope.
func (s CursorStack) Push(cursor string) CursorStack {
	next := make([]string, len(s.cursors)+1)
	copy(next, s.cursors)
	next[len(s.cursors)] = cursor
	return CursorStack{cursors: next}
}

// Pop devuelve la pila sin el tope y el cursor retirado. Sobre una pila vacía
// devuelve la misma pila y ok=false.
func (s CursorStack) Pop() (CursorStack, string, bool) {
	if len(s.cursors) == 0 {
		return s, "", false
	}
	top := s.cursors[len(s.cursors)-1]
	return CursorStack{cursors: s.cursors[:len(s.cursors)-1]}, top, true
}

// Peek devuelve el cursor del tope sin retirarlo.
func (s CursorStack) Peek() (string, bool) {
	if len(s.cursors) == 0 {
		return "", false
	}
	return s.cursors[len(s.cursors)-1], true
}

// Len cantidad de cursores en la pila.
func (s CursorStack) Len() int {
	return len(s.cursors)
}
