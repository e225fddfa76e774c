package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryMovement representa un ingreso de mercancía: registro inmutable de
// auditoría creado una sola vez por cada renglón confirmado de una factura de
// compra. El stock del producto es una proyección derivada de estos registros.
type InventoryMovement struct {
	ID            string
	CompanyID     string
	InvoiceNumber string
	SupplierName  string
	ProductID     string
	ProductName   string
	Quantity      int64 // unidades canónicas recibidas
	UnitCost      decimal.Decimal
	MarginPct     decimal.Decimal
	Lot           string
	ExpiresAt     *time.Time
	Date          time.Time // fecha del ingreso
	CreatedAt     time.Time
	CreatedBy     string // operador que confirmó
}
