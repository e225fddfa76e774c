package receiving

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// PartialCommitError reporta un commit donde al menos un renglón falló. Trae
// el resultado por renglón para que el caller reintente o concilie; nunca se
// reporta como éxito global.
type PartialCommitError struct {
	InvoiceNumber string
	Committed     int
	Results       []dto.ItemCommitResult
}

// Error implementa error.
func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("ingreso %s: %d de %d renglones confirmados", e.InvoiceNumber, e.Committed, len(e.Results))
}

// CommitUseCase convierte un carrito confirmado en cambios durables: por cada
// renglón, actualización del producto + movimiento de ingreso en una misma
// transacción; la factura completa es una saga con resultado registrado por
// paso. Sin control de concurrencia optimista entre sesiones: dos ingresos
// simultáneos sobre el mismo producto serializan por el FOR UPDATE de la fila.
type CommitUseCase struct {
	store    *CartStore
	txRunner TxRunner
}

// NewCommitUseCase construye el caso de uso de confirmación.
func NewCommitUseCase(store *CartStore, txRunner TxRunner) *CommitUseCase {
	return &CommitUseCase{store: store, txRunner: txRunner}
}

// Commit confirma la factura del carrito del operador. Requiere carrito no
// vacío, proveedor y número de factura. Una vez en CONFIRMANDO la operación
// corre hasta el final (éxito o fallo reportado); no hay cancelación.
func (uc *CommitUseCase) Commit(ctx context.Context, companyID, userID string, in dto.CommitRequest) (*dto.CommitResponse, error) {
	if in.SupplierName == "" || in.InvoiceNumber == "" {
		return nil, domain.ErrMissingRequiredField
	}

	var items []StagedItem
	err := uc.store.Mutate(companyID, userID, func(c *Cart) error {
		if err := c.beginSubmit(); err != nil {
			return err
		}
		items = c.Items()
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	results := make([]dto.ItemCommitResult, len(items))
	committed := 0
	for i, item := range items {
		results[i] = dto.ItemCommitResult{
			Index:       i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Status:      "OK",
		}
		if err := uc.commitItem(ctx, companyID, userID, in, item, now); err != nil {
			results[i].Status = "ERROR"
			results[i].Error = err.Error()
			continue
		}
		committed++
	}

	ok := committed == len(items)
	_ = uc.store.Mutate(companyID, userID, func(c *Cart) error {
		c.endSubmit(ok)
		return nil
	})

	if !ok {
		return nil, &PartialCommitError{
			InvoiceNumber: in.InvoiceNumber,
			Committed:     committed,
			Results:       results,
		}
	}
	return &dto.CommitResponse{
		InvoiceNumber: in.InvoiceNumber,
		Committed:     committed,
		Items:         results,
	}, nil
}

// commitItem ejecuta un renglón en una transacción: bloquea la fila del
// producto, suma stock canónico, actualiza costo/lote/vencimiento/precios y
// registra el movimiento de ingreso.
func (uc *CommitUseCase) commitItem(ctx context.Context, companyID, userID string, in dto.CommitRequest, item StagedItem, now time.Time) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return domain.ErrForbidden
		}

		product.Stock += item.CanonicalQty
		product.Cost = item.UnitCost
		product.Lot = item.Lot
		exp := item.ExpiresAt
		product.ExpiresAt = &exp
		product.Packaging = item.Packaging
		if product.Prices == nil {
			product.Prices = make(map[entity.PackagingLevel]decimal.Decimal, len(item.Prices))
		}
		for lvl, price := range item.Prices {
			product.Prices[lvl] = price
		}
		product.UpdatedAt = now
		if err := productRepo.ApplyReceipt(product); err != nil {
			return err
		}

		mov := &entity.InventoryMovement{
			ID:            uuid.New().String(),
			CompanyID:     companyID,
			InvoiceNumber: in.InvoiceNumber,
			SupplierName:  in.SupplierName,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      item.CanonicalQty,
			UnitCost:      item.UnitCost,
			MarginPct:     item.MarginPct,
			Lot:           item.Lot,
			ExpiresAt:     &exp,
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		return movRepo.Create(mov)
	})
}
