package replenishment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// GeneratorUseCase convierte los grupos del análisis (con proveedor asignado y
// selección del operador) en borradores de órdenes de compra. Una orden por
// grupo; encabezado y renglones en una sola transacción. Los grupos sin
// proveedor se omiten sin error; un grupo fallido no detiene a los demás.
type GeneratorUseCase struct {
	txRunner     OrderTxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewGeneratorUseCase construye el generador de borradores.
func NewGeneratorUseCase(
	txRunner OrderTxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *GeneratorUseCase {
	return &GeneratorUseCase{txRunner: txRunner, productRepo: productRepo, supplierRepo: supplierRepo}
}

// Generate crea un borrador por cada grupo con proveedor y al menos un renglón
// seleccionado con cantidad positiva. Nombre y costo del producto se congelan
// al momento de generar.
func (uc *GeneratorUseCase) Generate(ctx context.Context, companyID, userID string, in dto.GenerateOrdersRequest) (*dto.GenerateOrdersResponse, error) {
	out := &dto.GenerateOrdersResponse{}
	for _, group := range in.Groups {
		if group.SupplierID == "" {
			continue // sin proveedor asignado: omitido, no es error
		}
		if err := uc.generateForGroup(ctx, companyID, userID, group); err != nil {
			if err == errNoSelection {
				continue
			}
			out.Failures = append(out.Failures, dto.GroupFailure{
				Laboratory: group.Laboratory,
				Error:      err.Error(),
			})
			continue
		}
		out.OrdersCreated++
	}
	return out, nil
}

// errNoSelection grupo con proveedor pero sin renglones seleccionados válidos.
var errNoSelection = fmt.Errorf("grupo sin renglones seleccionados")

func (uc *GeneratorUseCase) generateForGroup(ctx context.Context, companyID, userID string, group dto.OrderGroupRequest) error {
	supplier, err := uc.supplierRepo.GetByID(group.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Status:       entity.OrderStatusDraft,
		CreatedAt:    now,
		CreatedBy:    userID,
	}

	var lines []*entity.PurchaseOrderLine
	for _, item := range group.Items {
		if !item.Selected || item.Quantity <= 0 {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.CompanyID != companyID {
			return domain.ErrNotFound
		}
		lines = append(lines, &entity.PurchaseOrderLine{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   product.ID,
			ProductName: product.Name, // snapshot: cambios posteriores no alteran el borrador
			Quantity:    item.Quantity,
			UnitCost:    product.Cost,
		})
	}
	if len(lines) == 0 {
		return errNoSelection
	}

	return uc.txRunner.RunOrder(ctx, func(orderRepo repository.PurchaseOrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return orderRepo.CreateLines(lines)
	})
}
