package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// PreviewRequest body para POST /api/receiving/preview. Calcula en vivo la
// conversión y los precios sugeridos sin tocar el carrito.
// PackagingOverride permite al operador corregir un ratio antes de confirmar
// (ej. la caja ahora trae 12 y no 10); vacío = usar la tabla del producto.
type PreviewRequest struct {
	ProductID         string                          `json:"product_id"`
	Quantity          int64                           `json:"quantity"`
	Level             entity.PackagingLevel           `json:"level"`
	TotalCost         decimal.Decimal                 `json:"total_cost"`
	MarginPct         decimal.Decimal                 `json:"margin_pct"`
	PackagingOverride map[entity.PackagingLevel]int64 `json:"packaging_override,omitempty"`
}

// PreviewResponse resultado del motor de precios.
type PreviewResponse struct {
	CanonicalQty    int64                                     `json:"canonical_qty"`
	UnitCost        decimal.Decimal                           `json:"unit_cost"`
	SuggestedPrices map[entity.PackagingLevel]decimal.Decimal `json:"suggested_prices"`
}

// AddItemRequest body para POST /api/receiving/cart/items.
// PriceOverrides: precios editados a mano por el operador; un nivel ausente
// conserva el precio sugerido por el motor.
type AddItemRequest struct {
	ProductID         string                                    `json:"product_id"`
	Quantity          int64                                     `json:"quantity"`
	Level             entity.PackagingLevel                     `json:"level"`
	TotalCost         decimal.Decimal                           `json:"total_cost"`
	MarginPct         decimal.Decimal                           `json:"margin_pct"`
	Lot               string                                    `json:"lot"`
	ExpiresAt         *time.Time                                `json:"expires_at,omitempty"`
	PackagingOverride map[entity.PackagingLevel]int64           `json:"packaging_override,omitempty"`
	PriceOverrides    map[entity.PackagingLevel]decimal.Decimal `json:"price_overrides,omitempty"`
}

// StagedItemResponse renglón en preparación dentro del carrito.
type StagedItemResponse struct {
	ProductID    string                                    `json:"product_id"`
	ProductName  string                                    `json:"product_name"`
	Level        entity.PackagingLevel                     `json:"level"`
	Quantity     int64                                     `json:"quantity"`
	CanonicalQty int64                                     `json:"canonical_qty"`
	TotalCost    decimal.Decimal                           `json:"total_cost"`
	UnitCost     decimal.Decimal                           `json:"unit_cost"`
	MarginPct    decimal.Decimal                           `json:"margin_pct"`
	Lot          string                                    `json:"lot"`
	ExpiresAt    time.Time                                 `json:"expires_at"`
	Prices       map[entity.PackagingLevel]decimal.Decimal `json:"prices"`
}

// CartResponse estado del carrito para renderizado.
type CartResponse struct {
	State string               `json:"state"`
	Items []StagedItemResponse `json:"items"`
}

// CommitRequest body para POST /api/receiving/commit.
type CommitRequest struct {
	SupplierName  string `json:"supplier_name"`
	InvoiceNumber string `json:"invoice_number"`
}

// ItemCommitResult resultado por renglón de un commit. Status es "OK" o
// "ERROR"; en error, Error trae el detalle para reintentar o conciliar.
type ItemCommitResult struct {
	Index       int    `json:"index"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

// CommitResponse resultado global del commit de la factura.
type CommitResponse struct {
	InvoiceNumber string             `json:"invoice_number"`
	Committed     int                `json:"committed"`
	Items         []ItemCommitResult `json:"items"`
}

// LotExpiryResponse respuesta del lookup de vencimiento por lote conocido.
type LotExpiryResponse struct {
	Found     bool       `json:"found"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// MovementResponse ingreso de mercancía para listados.
type MovementResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	SupplierName  string          `json:"supplier_name"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	MarginPct     decimal.Decimal `json:"margin_pct"`
	Lot           string          `json:"lot"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedBy     string          `json:"created_by"`
}
