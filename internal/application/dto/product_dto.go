package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ProductResponse producto para listados y selección en el ingreso.
type ProductResponse struct {
	ID         string                                    `json:"id"`
	SKU        string                                    `json:"sku,omitempty"`
	Name       string                                    `json:"name"`
	Laboratory string                                    `json:"laboratory,omitempty"`
	Stock      int64                                     `json:"stock"`
	MinStock   int64                                     `json:"min_stock"`
	Cost       decimal.Decimal                           `json:"cost"`
	Prices     map[entity.PackagingLevel]decimal.Decimal `json:"prices,omitempty"`
	Packaging  entity.PackagingTable                     `json:"packaging,omitempty"`
	Lot        string                                    `json:"lot,omitempty"`
	ExpiresAt  *time.Time                                `json:"expires_at,omitempty"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

// SupplierResponse proveedor para listados y asignación por grupo.
type SupplierResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Laboratory string `json:"laboratory,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name       string `json:"name"`
	Laboratory string `json:"laboratory,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}
