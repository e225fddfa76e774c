package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SupplierUseCase alta y consulta de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso de proveedores.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create registra un proveedor de la farmacia.
func (uc *SupplierUseCase) Create(companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       in.Name,
		Laboratory: in.Laboratory,
		Phone:      in.Phone,
		Email:      in.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{
		ID:         supplier.ID,
		Name:       supplier.Name,
		Laboratory: supplier.Laboratory,
		Phone:      supplier.Phone,
		Email:      supplier.Email,
	}, nil
}

// List lista los proveedores de la farmacia.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierResponse{
			ID:         s.ID,
			Name:       s.Name,
			Laboratory: s.Laboratory,
			Phone:      s.Phone,
			Email:      s.Email,
		})
	}
	return out, nil
}
