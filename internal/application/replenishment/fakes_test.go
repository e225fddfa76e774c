package replenishment_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests del asesor y el generador
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "farmacia-1"
	testUserID    = "operador-1"
)

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return r.ListAllByCompany(companyID)
}

func (r *fakeProductRepo) SearchByName(companyID, normalizedQuery string, limit, offset int) ([]*entity.Product, error) {
	return r.ListAllByCompany(companyID)
}

func (r *fakeProductRepo) ListAllByCompany(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ApplyReceipt(product *entity.Product) error {
	return nil
}

type fakeSupplierRepo struct {
	suppliers []*entity.Supplier
}

func (r *fakeSupplierRepo) Create(supplier *entity.Supplier) error {
	r.suppliers = append(r.suppliers, supplier)
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeOrderRepo acumula órdenes y renglones; puede fallar a demanda para
// probar el aislamiento entre grupos.
type fakeOrderRepo struct {
	orders  []*entity.PurchaseOrder
	lines   []*entity.PurchaseOrderLine
	failFor string // SupplierID cuya orden falla al persistir
}

func (r *fakeOrderRepo) Create(order *entity.PurchaseOrder) error {
	if order.SupplierID == r.failFor {
		return fmt.Errorf("fallo simulado de persistencia")
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) CreateLines(lines []*entity.PurchaseOrderLine) error {
	r.lines = append(r.lines, lines...)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListLines(orderID string) ([]*entity.PurchaseOrderLine, error) {
	var out []*entity.PurchaseOrderLine
	for _, l := range r.lines {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

// fakeOrderTxRunner simula la transacción: si el callback falla, descarta lo
// escrito en esa llamada.
type fakeOrderTxRunner struct {
	repo *fakeOrderRepo
}

func (r *fakeOrderTxRunner) RunOrder(ctx context.Context, fn func(orderRepo repository.PurchaseOrderRepository) error) error {
	ordersBefore := len(r.repo.orders)
	linesBefore := len(r.repo.lines)
	if err := fn(r.repo); err != nil {
		r.repo.orders = r.repo.orders[:ordersBefore]
		r.repo.lines = r.repo.lines[:linesBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func catalogProduct(id, name, lab string, stock, minStock int64) *entity.Product {
	return &entity.Product{
		ID:         id,
		CompanyID:  testCompanyID,
		SKU:        "SKU-" + id,
		Name:       name,
		Laboratory: lab,
		Stock:      stock,
		MinStock:   minStock,
		Cost:       decimal.NewFromInt(3),
	}
}

func testSupplier(id, name, lab string) *entity.Supplier {
	return &entity.Supplier{
		ID:         id,
		CompanyID:  testCompanyID,
		Name:       name,
		Laboratory: lab,
	}
}
