package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, company_id, sku, name, laboratory, stock, min_stock, cost, prices, packaging, lot, expires_at, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Prices y Packaging se guardan como JSONB: el mapeo
// disperso de niveles de empaque admite niveles futuros sin cambio de esquema.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p             entity.Product
		pricesJSON    []byte
		packagingJSON []byte
	)
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Laboratory, &p.Stock, &p.MinStock,
		&p.Cost, &pricesJSON, &packagingJSON, &p.Lot, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(pricesJSON) > 0 {
		if err := json.Unmarshal(pricesJSON, &p.Prices); err != nil {
			return nil, fmt.Errorf("decode prices: %w", err)
		}
	}
	if len(packagingJSON) > 0 {
		if err := json.Unmarshal(packagingJSON, &p.Packaging); err != nil {
			return nil, fmt.Errorf("decode packaging: %w", err)
		}
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE)
// para evitar condiciones de carrera entre ingresos simultáneos.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListByCompany lista productos por farmacia con paginación.
func (r *ProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// SearchByName busca por nombre normalizado (columna name_norm, sin tildes y
// en minúsculas, mantenida por el módulo de catálogo) o por SKU exacto.
func (r *ProductRepo) SearchByName(companyID, normalizedQuery string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE company_id = $1 AND (name_norm LIKE $2 OR sku = $3)
		ORDER BY name LIMIT $4 OFFSET $5`
	pattern := "%" + normalizedQuery + "%"
	return r.list(query, companyID, pattern, normalizedQuery, limit, offset)
}

// ListAllByCompany devuelve el catálogo completo para el análisis de reposición.
func (r *ProductRepo) ListAllByCompany(companyID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY name`
	return r.list(query, companyID)
}

// ApplyReceipt persiste los campos que muta un ingreso: stock, costo, precios,
// tabla de empaques, lote y vencimiento. El resto del producto no se toca.
func (r *ProductRepo) ApplyReceipt(product *entity.Product) error {
	prices := product.Prices
	if prices == nil {
		prices = map[entity.PackagingLevel]decimal.Decimal{}
	}
	pricesJSON, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("encode prices: %w", err)
	}
	packaging := product.Packaging
	if packaging == nil {
		packaging = entity.PackagingTable{}
	}
	packagingJSON, err := json.Marshal(packaging)
	if err != nil {
		return fmt.Errorf("encode packaging: %w", err)
	}
	query := `
		UPDATE products
		SET stock = $2, cost = $3, prices = $4, packaging = $5, lot = $6, expires_at = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Stock, product.Cost, pricesJSON, packagingJSON,
		product.Lot, product.ExpiresAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("apply receipt: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("apply receipt: producto %s no existe", product.ID)
	}
	return nil
}
