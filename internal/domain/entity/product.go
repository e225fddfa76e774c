package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la farmacia. Stock se maneja en unidades
// canónicas; Packaging define los ratios de conversión por nivel de empaque y
// Prices el precio de venta por nivel (UNIDAD siempre presente tras el primer
// ingreso). Cost es el costo unitario del último ingreso.
// Stock es una proyección denormalizada de la suma de movimientos.
type Product struct {
	ID         string
	CompanyID  string
	SKU        string // código de barras, opcional
	Name       string
	Laboratory string // laboratorio/fabricante, opcional
	Stock      int64  // unidades canónicas
	MinStock   int64  // umbral de stock mínimo; 0 = reposición deshabilitada
	Cost       decimal.Decimal
	Prices     map[PackagingLevel]decimal.Decimal
	Packaging  PackagingTable
	Lot        string     // lote vigente
	ExpiresAt  *time.Time // vencimiento del lote vigente
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
