package replenishment

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// OrderQueryUseCase consulta de borradores generados (solo lectura).
type OrderQueryUseCase struct {
	orderRepo repository.PurchaseOrderRepository
}

// NewOrderQueryUseCase construye el caso de uso de consulta de órdenes.
func NewOrderQueryUseCase(orderRepo repository.PurchaseOrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// List lista las órdenes de la farmacia sin renglones (para tablas).
func (uc *OrderQueryUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o, nil))
	}
	return out, nil
}

// GetByID devuelve una orden con sus renglones, o nil si no existe o es de
// otra farmacia.
func (uc *OrderQueryUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, nil
	}
	lines, err := uc.orderRepo.ListLines(order.ID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order, lines)
	return &resp, nil
}

func toOrderResponse(o *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		CreatedBy:    o.CreatedBy,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
		})
	}
	return resp
}
