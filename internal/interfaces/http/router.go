package http

import (
	"github.com/gofiber/fiber/v2"
	appstocktake "github.com/jhoicas/stocktake-api/internal/application/stocktake"
	"github.com/jhoicas/stocktake-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	LocationUC  *usecase.LocationUseCase
	StocktakeUC *appstocktake.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", locationHandler.Create)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)
	locations.Put("/:id/stock/:productId", locationHandler.UpsertStockLevel)

	stocktakes := api.Group("/stocktakes")
	stocktakeHandler := NewStocktakeHandler(deps.StocktakeUC)
	stocktakes.Get("/", stocktakeHandler.List)
	stocktakes.Post("/", stocktakeHandler.Create)
	// La ruta de items va antes que /:id para que Fiber no la capture como ID.
	stocktakes.Put("/items/:itemId/count", stocktakeHandler.UpdateItemCount)
	stocktakes.Get("/:id", stocktakeHandler.GetByID)
	stocktakes.Post("/:id/finalize", stocktakeHandler.Finalize)
	stocktakes.Delete("/:id", stocktakeHandler.Delete)
}
