package receiving_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests del carrito y el commit
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	// failApplyFor simula un fallo de persistencia al aplicar el ingreso a ese producto.
	failApplyFor string
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Prices = make(map[entity.PackagingLevel]decimal.Decimal, len(p.Prices))
	for k, v := range p.Prices {
		cp.Prices[k] = v
	}
	cp.Packaging = make(entity.PackagingTable, len(p.Packaging))
	for k, v := range p.Packaging {
		cp.Packaging[k] = v
	}
	return &cp
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

// GetByIDForUpdate devuelve una copia: si el "tx" falla, las mutaciones del
// caller no deben verse en el almacén (simula el rollback).
func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SearchByName(companyID, normalizedQuery string, limit, offset int) ([]*entity.Product, error) {
	return r.ListByCompany(companyID, limit, offset)
}

func (r *fakeProductRepo) ListAllByCompany(companyID string) ([]*entity.Product, error) {
	return r.ListByCompany(companyID, 0, 0)
}

func (r *fakeProductRepo) ApplyReceipt(product *entity.Product) error {
	if product.ID == r.failApplyFor {
		return fmt.Errorf("fallo simulado de persistencia")
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
	createErr error
}

func (r *fakeMovementRepo) Create(movement *entity.InventoryMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *movement
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByCompany(companyID, productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.movements {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) GetLatestByProductAndLot(companyID, productID, lot string) (*entity.InventoryMovement, error) {
	var latest *entity.InventoryMovement
	for _, m := range r.movements {
		if m.CompanyID != companyID || m.ProductID != productID || m.Lot != lot {
			continue
		}
		if latest == nil || m.Date.After(latest.Date) {
			latest = m
		}
	}
	return latest, nil
}

// fakeTxRunner invoca el callback directamente con los fakes. El "rollback" lo
// modela fakeProductRepo devolviendo copias en GetByIDForUpdate: si ApplyReceipt
// o Create fallan, el almacén queda intacto.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movRepo, r.productRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "farmacia-1"
	testUserID    = "operador-1"
)

func testProduct(id, name string) *entity.Product {
	return &entity.Product{
		ID:        id,
		CompanyID: testCompanyID,
		SKU:       "SKU-" + id,
		Name:      name,
		Stock:     100,
		MinStock:  10,
		Cost:      decimal.NewFromInt(4),
		Prices:    map[entity.PackagingLevel]decimal.Decimal{},
		Packaging: entity.PackagingTable{
			entity.LevelBlister: 10,
			entity.LevelBox:     100,
		},
	}
}
