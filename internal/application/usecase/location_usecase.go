package usecase

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktake-api/internal/application/dto"
	"github.com/jhoicas/stocktake-api/internal/domain"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/domain/repository"
	"github.com/jhoicas/stocktake-api/internal/domain/sorting"
)

// LocationUseCase casos de uso CRUD para ubicaciones de inventario,
// más la edición directa de niveles de stock.
type LocationUseCase struct {
	repo      repository.LocationRepository
	stockRepo repository.StockLevelRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, stockRepo repository.StockLevelRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, stockRepo: stockRepo}
}

// Create crea una ubicación tras verificar que el nombre no esté en uso.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResult, error) {
	conflict, err := CheckForDuplicates(uc.repo, []DuplicateCheck{{
		Field:    "name",
		Value:    in.Name,
		Required: true,
		Message:  fmt.Sprintf("ya existe una ubicación con el nombre %q", in.Name),
		Kind:     dto.ErrTypeDuplicateLocation,
	}})
	if err != nil {
		return dto.FailResult[dto.LocationResponse]("no se pudo crear la ubicación, intente de nuevo", dto.ErrTypeDatabase), nil
	}
	if conflict != nil {
		return dto.FailResult[dto.LocationResponse](conflict.Message, conflict.Kind), nil
	}

	now := time.Now()
	location := &entity.InventoryLocation{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
		ContactNumber: in.ContactNumber,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(location); err != nil {
		// Respaldo contra la carrera check-then-insert sobre el nombre.
		return duplicateLocationResult(err, in.Name), nil
	}
	return dto.OkResult(toLocationResponse(location)), nil
}

// GetByID obtiene una ubicación activa con su stock. nil si no existe.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones activas ordenadas en el servidor según sort/order.
// El ordenamiento usa sort estable para que los empates conserven el orden
// de llegada (created_at DESC del repositorio).
func (uc *LocationUseCase) List(in dto.ListLocationsRequest) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if in.Sort != "" {
		cmp := sorting.Comparator[*entity.InventoryLocation](sorting.ParseOrder(in.Order), locationSortKey(in.Sort))
		slices.SortStableFunc(list, cmp)
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Locations: items}, nil
}

// Update actualiza una ubicación; el nombre se re-verifica excluyéndose a sí misma.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResult, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return dto.FailResult[dto.LocationResponse]("no se pudo actualizar la ubicación, intente de nuevo", dto.ErrTypeDatabase), nil
	}
	if location == nil {
		return dto.FailResult[dto.LocationResponse]("ubicación no encontrada", dto.ErrTypeNotFound), nil
	}

	if in.Name != nil {
		conflict, err := CheckForDuplicates(uc.repo, []DuplicateCheck{{
			Field:     "name",
			Value:     *in.Name,
			Required:  true,
			Message:   fmt.Sprintf("ya existe una ubicación con el nombre %q", *in.Name),
			Kind:      dto.ErrTypeDuplicateLocation,
			ExcludeID: id,
		}})
		if err != nil {
			return dto.FailResult[dto.LocationResponse]("no se pudo actualizar la ubicación, intente de nuevo", dto.ErrTypeDatabase), nil
		}
		if conflict != nil {
			return dto.FailResult[dto.LocationResponse](conflict.Message, conflict.Kind), nil
		}
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.ContactPerson != nil {
		location.ContactPerson = *in.ContactPerson
	}
	if in.ContactNumber != nil {
		location.ContactNumber = *in.ContactNumber
	}
	if in.Notes != nil {
		location.Notes = *in.Notes
	}
	location.UpdatedAt = time.Now()

	if err := uc.repo.Update(location); err != nil {
		return duplicateLocationResult(err, location.Name), nil
	}
	return dto.OkResult(toLocationResponse(location)), nil
}

// Delete marca la ubicación como borrada. nil si no existe.
func (uc *LocationUseCase) Delete(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.SoftDelete(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// UpsertStockLevel edita directamente el nivel de stock de un producto en la
// ubicación (alta o sobreescritura). La cantidad llega ya validada como >= 0.
func (uc *LocationUseCase) UpsertStockLevel(locationID, productID string, in dto.UpsertStockLevelRequest) (*dto.StockLevelResponse, error) {
	location, err := uc.repo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}

	level := &entity.StockLevel{
		ID:           uuid.New().String(),
		ProductID:    productID,
		LocationID:   locationID,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
		UpdatedAt:    time.Now(),
	}
	if err := uc.stockRepo.Upsert(level); err != nil {
		return nil, err
	}
	stored, err := uc.stockRepo.Get(productID, locationID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = level
	}
	resp := toStockLevelResponse(*stored)
	return &resp, nil
}

// duplicateLocationResult traduce una violación de unicidad del storage al
// resultado estructurado; cualquier otro error queda como DATABASE_ERROR.
func duplicateLocationResult(err error, name string) *dto.LocationResult {
	if errors.Is(err, domain.ErrDuplicate) {
		return dto.FailResult[dto.LocationResponse](
			fmt.Sprintf("ya existe una ubicación con el nombre %q", name), dto.ErrTypeDuplicateLocation)
	}
	return dto.FailResult[dto.LocationResponse]("no se pudo guardar la ubicación, intente de nuevo", dto.ErrTypeDatabase)
}

func locationSortKey(field string) func(*entity.InventoryLocation) any {
	switch field {
	case "name":
		return func(l *entity.InventoryLocation) any { return l.Name }
	case "created_at":
		return func(l *entity.InventoryLocation) any { return l.CreatedAt }
	default:
		return func(l *entity.InventoryLocation) any { return l.CreatedAt }
	}
}

func toLocationResponse(l *entity.InventoryLocation) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	resp := &dto.LocationResponse{
		ID:            l.ID,
		Name:          l.Name,
		Address:       l.Address,
		ContactPerson: l.ContactPerson,
		ContactNumber: l.ContactNumber,
		Notes:         l.Notes,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
		DeletedAt:     l.DeletedAt,
	}
	for _, sl := range l.StockLevels {
		resp.StockLevels = append(resp.StockLevels, toStockLevelResponse(sl))
	}
	return resp
}
