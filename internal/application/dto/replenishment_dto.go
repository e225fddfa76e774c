package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severidad del análisis de reposición.
const (
	SeverityCritical  = "CRITICO"
	SeverityProactive = "PREVENTIVO"
	SeverityNone      = "SIN_NECESIDAD"
)

// AdviceItem candidato a reposición con cantidad sugerida. Selected arranca
// en true; el operador puede desmarcar o ajustar la cantidad antes de generar
// las órdenes.
type AdviceItem struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Stock        int64           `json:"stock"`
	MinStock     int64           `json:"min_stock"`
	SuggestedQty int64           `json:"suggested_qty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Selected     bool            `json:"selected"`
}

// AdviceGroup candidatos agrupados por laboratorio. El caller asigna un
// proveedor por grupo antes de generar órdenes.
type AdviceGroup struct {
	Laboratory string       `json:"laboratory"`
	Items      []AdviceItem `json:"items"`
}

// AdviceResponse salida del análisis de reposición más la lista de
// proveedores para asignación.
type AdviceResponse struct {
	Severity  string             `json:"severity"`
	Groups    []AdviceGroup      `json:"groups"`
	Suppliers []SupplierResponse `json:"suppliers"`
}

// OrderItemRequest renglón seleccionado (con posible override de cantidad).
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Selected  bool   `json:"selected"`
}

// OrderGroupRequest grupo con proveedor asignado. SupplierID vacío = grupo
// omitido (no es error).
type OrderGroupRequest struct {
	Laboratory string             `json:"laboratory"`
	SupplierID string             `json:"supplier_id"`
	Items      []OrderItemRequest `json:"items"`
}

// GenerateOrdersRequest body para POST /api/replenishment/orders.
type GenerateOrdersRequest struct {
	Groups []OrderGroupRequest `json:"groups"`
}

// GroupFailure error por grupo al generar órdenes (los demás grupos siguen).
type GroupFailure struct {
	Laboratory string `json:"laboratory"`
	Error      string `json:"error"`
}

// GenerateOrdersResponse resultado de la generación de borradores.
type GenerateOrdersResponse struct {
	OrdersCreated int            `json:"orders_created"`
	Failures      []GroupFailure `json:"failures,omitempty"`
}

// OrderLineResponse renglón de una orden de compra.
type OrderLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// OrderResponse orden de compra con sus renglones.
type OrderResponse struct {
	ID           string              `json:"id"`
	SupplierID   string              `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	CreatedBy    string              `json:"created_by"`
	Lines        []OrderLineResponse `json:"lines,omitempty"`
}
