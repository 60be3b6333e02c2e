package stocktake

import (
	"context"

	"github.com/jhoicas/stocktake-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el snapshot inicial y la
// finalización del conteo sean todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stocktakeRepo repository.StocktakeRepository,
		stockRepo repository.StockLevelRepository,
		productRepo repository.ProductRepository,
	) error) error
}
