package usecase

// DuplicateFinder es el puerto mínimo que necesita el verificador de duplicados:
// consultar si existe un registro activo con un campo igual a un valor,
// excluyendo opcionalmente un ID (para updates sobre el mismo registro).
type DuplicateFinder interface {
	ExistsActive(field, value, excludeID string) (bool, error)
}

// DuplicateCheck describe una verificación de unicidad sobre un campo.
type DuplicateCheck struct {
	Field     string // columna a consultar (sku, barcode, name)
	Value     string // valor candidato
	Required  bool   // si es false y Value está vacío, la verificación se omite
	Message   string // mensaje legible del conflicto
	Kind      string // tipo de error (DUPLICATE_SKU, DUPLICATE_BARCODE, ...)
	ExcludeID string // ID a excluir de la búsqueda (update sobre sí mismo)
}

// Conflict primer conflicto encontrado por CheckForDuplicates.
type Conflict struct {
	Message string
	Kind    string
}

// CheckForDuplicates evalúa las verificaciones en orden y corta en el primer
// conflicto: una consulta por verificación hasta encontrar coincidencia.
// El orden de la lista decide qué conflicto se reporta cuando hay varios.
// Devuelve nil, nil si ninguna verificación encuentra registro.
func CheckForDuplicates(finder DuplicateFinder, checks []DuplicateCheck) (*Conflict, error) {
	for _, check := range checks {
		if !check.Required && check.Value == "" {
			continue
		}
		exists, err := finder.ExistsActive(check.Field, check.Value, check.ExcludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			return &Conflict{Message: check.Message, Kind: check.Kind}, nil
		}
	}
	return nil, nil
}
