package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra y sus renglones.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateLines(lines []*entity.PurchaseOrderLine) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error)
	ListLines(orderID string) ([]*entity.PurchaseOrderLine, error)
}
