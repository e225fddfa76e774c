package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
// Para garantizar órdenes completas, Create y CreateLines deben invocarse
// dentro de la misma transacción (TxRunner.RunOrder).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste el encabezado de una orden de compra.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, company_id, supplier_id, supplier_name, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.SupplierID, order.SupplierName,
		order.Status, order.CreatedAt, order.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateLines persiste los renglones de una orden.
func (r *PurchaseOrderRepo) CreateLines(lines []*entity.PurchaseOrderLine) error {
	query := `
		INSERT INTO purchase_order_lines (id, order_id, product_id, product_name, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, line := range lines {
		_, err := r.q.Exec(context.Background(), query,
			line.ID, line.OrderID, line.ProductID, line.ProductName, line.Quantity, line.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, company_id, supplier_id, supplier_name, status, created_at, created_by
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.SupplierID, &o.SupplierName, &o.Status, &o.CreatedAt, &o.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// ListByCompany lista órdenes de la farmacia, recientes primero.
func (r *PurchaseOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, company_id, supplier_id, supplier_name, status, created_at, created_by
		FROM purchase_orders WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.SupplierID, &o.SupplierName, &o.Status, &o.CreatedAt, &o.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListLines lista los renglones de una orden en su orden de inserción.
func (r *PurchaseOrderRepo) ListLines(orderID string) ([]*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_cost
		FROM purchase_order_lines WHERE order_id = $1 ORDER BY product_name`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitCost); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
