package usecase

import (
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/normalize"
)

// ProductUseCase consultas de catálogo para la pantalla de ingreso y el
// análisis de reposición. El CRUD de catálogo vive en otro módulo; aquí el
// producto solo se lee.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de consultas de producto.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// List lista productos de la farmacia; con q busca por nombre sin tildes o
// SKU exacto.
func (uc *ProductUseCase) List(companyID, q string, limit, offset int) (*dto.ProductListResponse, error) {
	var (
		products []*entity.Product
		err      error
	)
	if q != "" {
		products, err = uc.productRepo.SearchByName(companyID, normalize.Search(q), limit, offset)
	} else {
		products, err = uc.productRepo.ListByCompany(companyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, toProductResponse(p))
	}
	out.Total = len(out.Products)
	return out, nil
}

// GetByID devuelve un producto o nil si no existe o es de otra farmacia.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.CompanyID != companyID {
		return nil, nil
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		SKU:        p.SKU,
		Name:       p.Name,
		Laboratory: p.Laboratory,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		Cost:       p.Cost,
		Prices:     p.Prices,
		Packaging:  p.Packaging,
		Lot:        p.Lot,
		ExpiresAt:  p.ExpiresAt,
	}
}
