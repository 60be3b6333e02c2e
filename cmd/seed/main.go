// seed puebla la base de datos con ubicaciones, productos y niveles de stock
// de ejemplo. Es idempotente: los registros que ya existen se conservan tal
// cual (no se actualizan ni duplican).
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktake-api/internal/domain/entity"
	"github.com/jhoicas/stocktake-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stocktake-api/pkg/config"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name        string
	sku         string
	description string
	price       string
	barcode     string
}

var seedProducts = []seedProduct{
	{"Classic T-Shirt", "TSHIRT-001", "Comfortable cotton t-shirt", "19.99", "1234567890123"},
	{"Denim Jeans", "JEANS-001", "Classic blue denim jeans", "49.99", "1234567890124"},
	{"Leather Jacket", "JACKET-001", "Premium leather jacket", "199.99", "1234567890125"},
	{"Running Shoes", "SHOES-001", "Lightweight running shoes", "89.99", "1234567890126"},
	{"Wool Sweater", "SWEATER-001", "Warm wool sweater", "59.99", "1234567890127"},
	{"Canvas Backpack", "BACKPACK-001", "Durable canvas backpack", "39.99", "1234567890128"},
	{"Baseball Cap", "CAP-001", "Adjustable baseball cap", "14.99", "1234567890129"},
	{"Wool Socks", "SOCKS-001", "Comfortable wool socks", "9.99", "1234567890130"},
	{"Leather Belt", "BELT-001", "Genuine leather belt", "29.99", "1234567890131"},
	{"Sports Watch", "WATCH-001", "Water-resistant sports watch", "129.99", "1234567890132"},
}

type seedLocation struct {
	name          string
	address       string
	contactPerson string
	contactNumber string
	// Rango de cantidades iniciales y umbral mínimo para esta ubicación.
	qtyBase, qtySpread, minThreshold int
}

var seedLocations = []seedLocation{
	{"Main Warehouse", "123 Industrial Ave, City, State 12345", "John Doe", "+1-555-0100", 20, 100, 10},
	{"Retail Store Downtown", "456 Main St, City, State 12345", "Jane Smith", "+1-555-0200", 10, 50, 5},
	{"Distribution Center North", "789 Commerce Blvd, City, State 12345", "Bob Johnson", "+1-555-0300", 15, 80, 8},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fail("migraciones: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)

	fmt.Println("Sembrando base de datos...")

	// Ubicaciones: crear solo las que no existan ya por nombre.
	existing, err := locationRepo.List()
	if err != nil {
		fail("listar ubicaciones: %v", err)
	}
	byName := make(map[string]*entity.InventoryLocation, len(existing))
	for _, loc := range existing {
		byName[loc.Name] = loc
	}

	locations := make([]*entity.InventoryLocation, 0, len(seedLocations))
	for _, sl := range seedLocations {
		if loc, ok := byName[sl.name]; ok {
			locations = append(locations, loc)
			continue
		}
		loc := &entity.InventoryLocation{
			ID:            uuid.New().String(),
			Name:          sl.name,
			Address:       sl.address,
			ContactPerson: sl.contactPerson,
			ContactNumber: sl.contactNumber,
		}
		if err := locationRepo.Create(loc); err != nil {
			fail("crear ubicación %s: %v", sl.name, err)
		}
		locations = append(locations, loc)
	}
	fmt.Printf("Ubicaciones listas: %d\n", len(locations))

	// Productos con su stock inicial en cada ubicación.
	for _, sp := range seedProducts {
		product, err := productRepo.GetBySKU(sp.sku)
		if err != nil {
			fail("buscar producto %s: %v", sp.sku, err)
		}
		if product == nil {
			barcode := sp.barcode
			product = &entity.Product{
				ID:          uuid.New().String(),
				Name:        sp.name,
				SKU:         sp.sku,
				Description: sp.description,
				Price:       mustDecimal(sp.price),
				Barcode:     &barcode,
			}
			if err := productRepo.Create(product); err != nil {
				fail("crear producto %s: %v", sp.sku, err)
			}
		}

		for i, loc := range locations {
			sl := seedLocations[i]
			level, err := stockRepo.Get(product.ID, loc.ID)
			if err != nil {
				fail("buscar stock %s/%s: %v", sp.sku, loc.Name, err)
			}
			if level != nil {
				continue
			}
			threshold := sl.minThreshold
			err = stockRepo.Upsert(&entity.StockLevel{
				ID:           uuid.New().String(),
				ProductID:    product.ID,
				LocationID:   loc.ID,
				Quantity:     sl.qtyBase + rand.Intn(sl.qtySpread+1),
				MinThreshold: &threshold,
			})
			if err != nil {
				fail("crear stock %s/%s: %v", sp.sku, loc.Name, err)
			}
		}
	}

	fmt.Println("Siembra completada.")
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		fail("precio inválido %q: %v", s, err)
	}
	return d
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
