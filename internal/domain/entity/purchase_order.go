package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. En este núcleo solo se crean borradores;
// las transiciones posteriores pertenecen al módulo de compras.
const (
	OrderStatusDraft = "BORRADOR"
)

// PurchaseOrder es una orden de compra generada a partir de la sugerencia de
// reposición, agrupada por laboratorio y asignada a un proveedor.
type PurchaseOrder struct {
	ID           string
	CompanyID    string
	SupplierID   string
	SupplierName string
	Status       string
	CreatedAt    time.Time
	CreatedBy    string
}

// PurchaseOrderLine es un renglón de la orden. Nombre y costo se congelan al
// momento de generar el borrador para que cambios posteriores del catálogo no
// lo alteren.
type PurchaseOrderLine struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitCost    decimal.Decimal
}
