package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, company_id, invoice_number, supplier_name, product_id, product_name, quantity, unit_cost, margin_pct, lot, expires_at, date, created_at, created_by`

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es de solo inserción: los ingresos nunca se actualizan ni borran.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un ingreso de mercancía.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.InvoiceNumber, movement.SupplierName,
		movement.ProductID, movement.ProductName, movement.Quantity, movement.UnitCost,
		movement.MarginPct, movement.Lot, movement.ExpiresAt, movement.Date,
		movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.InvoiceNumber, &m.SupplierName, &m.ProductID, &m.ProductName,
		&m.Quantity, &m.UnitCost, &m.MarginPct, &m.Lot, &m.ExpiresAt, &m.Date,
		&m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByCompany lista ingresos de una farmacia, opcionalmente filtrados por
// producto y rango de fechas.
func (r *InventoryMovementRepo) ListByCompany(companyID, productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if productID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetLatestByProductAndLot devuelve el ingreso más reciente de ese
// (producto, lote), o nil si nunca se recibió ese lote.
func (r *InventoryMovementRepo) GetLatestByProductAndLot(companyID, productID, lot string) (*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM inventory_movements
		WHERE company_id = $1 AND product_id = $2 AND lot = $3
		ORDER BY date DESC LIMIT 1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, companyID, productID, lot))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement by lot: %w", err)
	}
	return m, nil
}
