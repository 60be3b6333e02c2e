package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktake-api/internal/application/dto"
	"github.com/jhoicas/stocktake-api/internal/application/usecase"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	apphttp "github.com/jhoicas/stocktake-api/internal/interfaces/http"
)

// memProductRepo repositorio de productos en memoria para los tests HTTP.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.IsDeleted() {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *memProductRepo) List(search, cursor string, limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsDeleted() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) SoftDelete(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.IsDeleted() {
		return nil, nil
	}
	now := time.Now()
	p.DeletedAt = &now
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) ExistsActive(field, value, excludeID string) (bool, error) {
	for _, p := range r.products {
		if p.IsDeleted() || p.ID == excludeID {
			continue
		}
		switch field {
		case "sku":
			if p.SKU == value {
				return true, nil
			}
		case "barcode":
			if p.Barcode != nil && *p.Barcode == value {
				return true, nil
			}
		case "name":
			if p.Name == value {
				return true, nil
			}
		}
	}
	return false, nil
}

// buildProductApp monta las rutas de productos sobre el repo en memoria.
func buildProductApp() *fiber.App {
	app := fiber.New()
	handler := apphttp.NewProductHandler(usecase.NewProductUseCase(newMemProductRepo(), true))
	products := app.Group("/api/products")
	products.Get("/", handler.List)
	products.Post("/", handler.Create)
	products.Get("/:id", handler.GetByID)
	products.Put("/:id", handler.Update)
	products.Delete("/:id", handler.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProductHandler_CreateYGet(t *testing.T) {
	app := buildProductApp()

	resp := postJSON(t, app, "/api/products/",
		`{"name":"Camisa clásica","sku":"TSHIRT-001","price":"19.99"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result dto.ProductResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.True(t, result.Success)
	require.NotNil(t, result.Data)

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+result.Data.ID, nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	var product dto.ProductResponse
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&product))
	assert.Equal(t, "TSHIRT-001", product.SKU)
}

func TestProductHandler_SKUDuplicadoRetorna409(t *testing.T) {
	app := buildProductApp()

	resp := postJSON(t, app, "/api/products/",
		`{"name":"Camisa clásica","sku":"TSHIRT-001","price":"19.99"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	dup := postJSON(t, app, "/api/products/",
		`{"name":"Otra camisa","sku":"TSHIRT-001","price":"29.99"}`)
	defer dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode,
		"un SKU duplicado debe responder 409")

	var result dto.ProductResult
	require.NoError(t, json.NewDecoder(dup.Body).Decode(&result))
	require.False(t, result.Success)
	require.NotNil(t, result.ErrorType)
	assert.Equal(t, dto.ErrTypeDuplicateSKU, *result.ErrorType)
}

func TestProductHandler_ValidacionRetorna400(t *testing.T) {
	app := buildProductApp()

	// Sin SKU
	resp := postJSON(t, app, "/api/products/", `{"name":"Camisa","price":"19.99"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Precio cero
	resp = postJSON(t, app, "/api/products/",
		`{"name":"Camisa","sku":"TSHIRT-001","price":"0"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"price debe ser estrictamente positivo")
}

func TestProductHandler_GetInexistenteRetorna404(t *testing.T) {
	app := buildProductApp()

	req := httptest.NewRequest(http.MethodGet, "/api/products/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_DeleteEsLogico(t *testing.T) {
	app := buildProductApp()

	created := postJSON(t, app, "/api/products/",
		`{"name":"Camisa clásica","sku":"TSHIRT-001","price":"19.99"}`)
	var result dto.ProductResult
	require.NoError(t, json.NewDecoder(created.Body).Decode(&result))
	created.Body.Close()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+result.Data.ID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&deleted))
	assert.NotNil(t, deleted.DeletedAt, "el borrado conserva el registro con deleted_at")

	// Tras el borrado el producto ya no es visible.
	getReq := httptest.NewRequest(http.MethodGet, "/api/products/"+result.Data.ID, nil)
	getResp, err := app.Test(getReq, -1)
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}
