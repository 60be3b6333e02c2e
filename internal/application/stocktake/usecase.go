package stocktake

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktake-api/internal/application/dto"
	"github.com/jhoicas/stocktake-api/internal/domain"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/domain/repository"
)

// UseCase motor de reconciliación de conteos físicos: snapshot de stock al
// iniciar la sesión, registro de cantidades contadas con variación, y
// finalización transaccional que corrige el stock con lo contado.
type UseCase struct {
	txRunner      TxRunner
	stocktakeRepo repository.StocktakeRepository
	stockRepo     repository.StockLevelRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	stocktakeRepo repository.StocktakeRepository,
	stockRepo repository.StockLevelRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		stocktakeRepo: stocktakeRepo,
		stockRepo:     stockRepo,
	}
}

// Create inicia una sesión de conteo para una ubicación: congela las
// cantidades actuales de todos los productos activos con stock en la
// ubicación como items de la sesión, en una sola transacción. Una ubicación
// sin niveles de stock produce una sesión con cero items, no un error.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateStocktakeRequest) (*dto.StocktakeResponse, error) {
	id := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		stocktakeRepo repository.StocktakeRepository,
		stockRepo repository.StockLevelRepository,
		_ repository.ProductRepository,
	) error {
		levels, err := stockRepo.ListByLocation(in.LocationID)
		if err != nil {
			return err
		}
		session := &entity.Stocktake{
			ID:         id,
			LocationID: in.LocationID,
			StartedAt:  time.Now(),
			CountedBy:  in.CountedBy,
			Notes:      in.Notes,
		}
		for _, level := range levels {
			if level.Product == nil {
				continue
			}
			session.Items = append(session.Items, entity.StocktakeItem{
				ID:             uuid.New().String(),
				StocktakeID:    id,
				ProductSKU:     level.Product.SKU,
				ProductName:    level.Product.Name,
				SystemQuantity: level.Quantity,
			})
		}
		return stocktakeRepo.Create(session)
	})
	if err != nil {
		return nil, err
	}

	created, err := uc.stocktakeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toStocktakeResponse(created), nil
}

// GetByID obtiene una sesión con ubicación e items. nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.StocktakeResponse, error) {
	session, err := uc.stocktakeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return toStocktakeResponse(session), nil
}

// List lista sesiones ordenadas por inicio descendente; locationID vacío
// lista todas.
func (uc *UseCase) List(locationID string) (*dto.StocktakeListResponse, error) {
	sessions, err := uc.stocktakeRepo.List(locationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StocktakeResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, *toStocktakeResponse(s))
	}
	return &dto.StocktakeListResponse{Stocktakes: items}, nil
}

// RecordCount registra la cantidad contada de un item y calcula la variación
// (contado - sistema). Un conteo puede revisarse cuantas veces se quiera
// mientras la sesión siga abierta; sobre una sesión finalizada se rechaza
// con ErrStocktakeCompleted.
func (uc *UseCase) RecordCount(itemID string, countedQuantity int) (*dto.StocktakeItemResponse, error) {
	if countedQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.stocktakeRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	session, err := uc.stocktakeRepo.GetByID(item.StocktakeID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if session.IsCompleted() {
		return nil, domain.ErrStocktakeCompleted
	}

	variance := countedQuantity - item.SystemQuantity
	if err := uc.stocktakeRepo.UpdateItemCount(itemID, countedQuantity, variance); err != nil {
		return nil, err
	}

	item.CountedQuantity = &countedQuantity
	item.Variance = &variance
	resp := toStocktakeItemResponse(*item)
	return &resp, nil
}

// Finalize cierra la sesión aplicando las cantidades contadas al stock, todo
// dentro de una única transacción: o se corrigen todos los niveles y se marca
// la sesión como finalizada, o no se toca nada. Items sin conteo quedan con
// su stock intacto; items cuyo SKU ya no resuelve a un producto se omiten.
func (uc *UseCase) Finalize(ctx context.Context, id string) (*dto.StocktakeResponse, error) {
	err := uc.txRunner.Run(ctx, func(
		stocktakeRepo repository.StocktakeRepository,
		stockRepo repository.StockLevelRepository,
		productRepo repository.ProductRepository,
	) error {
		session, err := stocktakeRepo.GetByID(id)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNotFound
		}
		if session.IsCompleted() {
			return domain.ErrStocktakeCompleted
		}

		for _, item := range session.Items {
			if item.CountedQuantity == nil {
				continue
			}
			product, err := productRepo.GetBySKU(item.ProductSKU)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			if err := stockRepo.SetQuantity(product.ID, session.LocationID, *item.CountedQuantity); err != nil {
				return err
			}
		}
		return stocktakeRepo.Complete(id)
	})
	if err != nil {
		return nil, err
	}

	completed, err := uc.stocktakeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toStocktakeResponse(completed), nil
}

// Delete elimina una sesión y sus items (borrado físico, sin marca lógica).
func (uc *UseCase) Delete(id string) (*dto.StocktakeResponse, error) {
	session, err := uc.stocktakeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.stocktakeRepo.Delete(id); err != nil {
		return nil, err
	}
	return toStocktakeResponse(session), nil
}

func toStocktakeResponse(s *entity.Stocktake) *dto.StocktakeResponse {
	if s == nil {
		return nil
	}
	resp := &dto.StocktakeResponse{
		ID:          s.ID,
		LocationID:  s.LocationID,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		CountedBy:   s.CountedBy,
		Notes:       s.Notes,
		Items:       make([]dto.StocktakeItemResponse, 0, len(s.Items)),
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, toStocktakeItemResponse(item))
	}
	if s.Location != nil {
		resp.Location = &dto.LocationResponse{
			ID:            s.Location.ID,
			Name:          s.Location.Name,
			Address:       s.Location.Address,
			ContactPerson: s.Location.ContactPerson,
			ContactNumber: s.Location.ContactNumber,
			Notes:         s.Location.Notes,
			CreatedAt:     s.Location.CreatedAt,
			UpdatedAt:     s.Location.UpdatedAt,
			DeletedAt:     s.Location.DeletedAt,
		}
	}
	return resp
}

func toStocktakeItemResponse(item entity.StocktakeItem) dto.StocktakeItemResponse {
	return dto.StocktakeItemResponse{
		ID:              item.ID,
		StocktakeID:     item.StocktakeID,
		ProductSKU:      item.ProductSKU,
		ProductName:     item.ProductName,
		SystemQuantity:  item.SystemQuantity,
		CountedQuantity: item.CountedQuantity,
		Variance:        item.Variance,
	}
}
