package usecase

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// MovementUseCase consulta del historial de ingresos (solo lectura; los
// movimientos son inmutables).
type MovementUseCase struct {
	movRepo repository.InventoryMovementRepository
}

// NewMovementUseCase construye el caso de uso de consulta de ingresos.
func NewMovementUseCase(movRepo repository.InventoryMovementRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo}
}

// List lista ingresos filtrando opcionalmente por producto y rango de fechas.
func (uc *MovementUseCase) List(companyID, productID string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.ListByCompany(companyID, productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:            m.ID,
			InvoiceNumber: m.InvoiceNumber,
			SupplierName:  m.SupplierName,
			ProductID:     m.ProductID,
			ProductName:   m.ProductName,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			MarginPct:     m.MarginPct,
			Lot:           m.Lot,
			ExpiresAt:     m.ExpiresAt,
			Date:          m.Date,
			CreatedBy:     m.CreatedBy,
		})
	}
	return out, nil
}
