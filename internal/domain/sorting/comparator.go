package sorting

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order dirección de ordenamiento para listados.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder normaliza el parámetro de dirección; cualquier valor distinto
// de "desc" se trata como ascendente.
func ParseOrder(s string) Order {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

// Comparator produce una función de comparación para ordenar registros por un
// campo heterogéneo (número, texto, fecha o nulo). Las fechas se comparan por
// su equivalente en milisegundos de época; los nulos van antes que cualquier
// valor en orden ascendente. Empates devuelven 0: usar un sort estable
// (slices.SortStableFunc) si el orden entre iguales importa.
func Comparator[T any](order Order, key func(T) any) func(a, b T) int {
	if order == Desc {
		return func(a, b T) int { return -compareValues(key(a), key(b)) }
	}
	return func(a, b T) int { return compareValues(key(a), key(b)) }
}

// compareValues compara dos valores de celda en orden ascendente.
func compareValues(a, b any) int {
	av, aNull := normalize(a)
	bv, bNull := normalize(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	switch x := av.(type) {
	case float64:
		y, ok := bv.(float64)
		if !ok {
			return strings.Compare(stringify(av), stringify(bv))
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case string:
		y, ok := bv.(string)
		if !ok {
			return strings.Compare(x, stringify(bv))
		}
		return strings.Compare(x, y)
	}
	return 0
}

// normalize reduce el valor a float64, string o nulo. Fechas → milisegundos
// de época; punteros nil y nil → nulo.
func normalize(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case time.Time:
		return float64(x.UnixMilli()), false
	case *time.Time:
		if x == nil {
			return nil, true
		}
		return float64(x.UnixMilli()), false
	case decimal.Decimal:
		return x.InexactFloat64(), false
	case int:
		return float64(x), false
	case int32:
		return float64(x), false
	case int64:
		return float64(x), false
	case float32:
		return float64(x), false
	case float64:
		return x, false
	case *int:
		if x == nil {
			return nil, true
		}
		return float64(*x), false
	case *string:
		if x == nil {
			return nil, true
		}
		return *x, false
	case string:
		return x, false
	default:
		return stringify(x), false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
