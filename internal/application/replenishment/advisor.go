package replenishment

import (
	"context"
	"sort"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// UnassignedGroup agrupa los productos sin laboratorio configurado.
const UnassignedGroup = "Sin laboratorio"

// Config parámetros del análisis de reposición.
type Config struct {
	// ProactiveCeiling techo de stock bajo para candidatos preventivos cuando
	// no hay críticos. Default 50 unidades.
	ProactiveCeiling int64
	// MinOrderQty piso de cantidad sugerida preventiva. Default 20 unidades.
	MinOrderQty int64
}

func (c Config) withDefaults() Config {
	if c.ProactiveCeiling <= 0 {
		c.ProactiveCeiling = 50
	}
	if c.MinOrderQty <= 0 {
		c.MinOrderQty = 20
	}
	return c
}

// AdvisorUseCase recorre el catálogo, clasifica la severidad del faltante y
// agrupa los candidatos por laboratorio para que el caller asigne un proveedor
// por grupo.
type AdvisorUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	cfg          Config
}

// NewAdvisorUseCase construye el caso de uso de análisis.
func NewAdvisorUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository, cfg Config) *AdvisorUseCase {
	return &AdvisorUseCase{productRepo: productRepo, supplierRepo: supplierRepo, cfg: cfg.withDefaults()}
}

// Advise clasifica el catálogo y propone cantidades:
//  1. CRITICO: stock ≤ mínimo y mínimo > 0 (mínimo 0 = reposición
//     deshabilitada para ese producto, política explícita).
//  2. Sin críticos: PREVENTIVO con 0 < stock < techo, sin mirar el mínimo.
//  3. Ninguno: SIN_NECESIDAD.
func (uc *AdvisorUseCase) Advise(ctx context.Context, companyID string) (*dto.AdviceResponse, error) {
	products, err := uc.productRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}

	severity, candidates := uc.classify(products)

	suppliers, err := uc.supplierRepo.ListByCompany(companyID, 500, 0)
	if err != nil {
		return nil, err
	}
	supplierDTOs := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		supplierDTOs = append(supplierDTOs, dto.SupplierResponse{
			ID:         s.ID,
			Name:       s.Name,
			Laboratory: s.Laboratory,
			Phone:      s.Phone,
			Email:      s.Email,
		})
	}

	return &dto.AdviceResponse{
		Severity:  severity,
		Groups:    groupByLaboratory(candidates),
		Suppliers: supplierDTOs,
	}, nil
}

type candidate struct {
	product      *entity.Product
	suggestedQty int64
}

func (uc *AdvisorUseCase) classify(products []*entity.Product) (string, []candidate) {
	var critical []candidate
	for _, p := range products {
		if p.MinStock > 0 && p.Stock <= p.MinStock {
			critical = append(critical, candidate{product: p, suggestedQty: suggestedCritical(p.Stock, p.MinStock)})
		}
	}
	if len(critical) > 0 {
		return dto.SeverityCritical, critical
	}

	var proactive []candidate
	for _, p := range products {
		if p.Stock > 0 && p.Stock < uc.cfg.ProactiveCeiling {
			proactive = append(proactive, candidate{product: p, suggestedQty: uc.suggestedProactive(p.Stock)})
		}
	}
	if len(proactive) > 0 {
		return dto.SeverityProactive, proactive
	}
	return dto.SeverityNone, nil
}

// suggestedCritical: max(mínimo − stock, mínimo); si no es positivo, el mínimo
// actúa como pedido base.
func suggestedCritical(stock, minStock int64) int64 {
	qty := minStock - stock
	if qty < minStock {
		qty = minStock
	}
	if qty <= 0 {
		return minStock
	}
	return qty
}

// suggestedProactive: techo − stock, con piso configurado si no es positivo.
func (uc *AdvisorUseCase) suggestedProactive(stock int64) int64 {
	qty := uc.cfg.ProactiveCeiling - stock
	if qty <= 0 {
		return uc.cfg.MinOrderQty
	}
	return qty
}

// groupByLaboratory arma los grupos ordenados por laboratorio, renglones
// pre-seleccionados y ordenados por nombre para salida estable.
func groupByLaboratory(candidates []candidate) []dto.AdviceGroup {
	byLab := make(map[string][]dto.AdviceItem)
	for _, c := range candidates {
		lab := c.product.Laboratory
		if lab == "" {
			lab = UnassignedGroup
		}
		byLab[lab] = append(byLab[lab], dto.AdviceItem{
			ProductID:    c.product.ID,
			ProductName:  c.product.Name,
			Stock:        c.product.Stock,
			MinStock:     c.product.MinStock,
			SuggestedQty: c.suggestedQty,
			UnitCost:     c.product.Cost,
			Selected:     true,
		})
	}

	labs := make([]string, 0, len(byLab))
	for lab := range byLab {
		labs = append(labs, lab)
	}
	sort.Strings(labs)

	groups := make([]dto.AdviceGroup, 0, len(labs))
	for _, lab := range labs {
		items := byLab[lab]
		sort.Slice(items, func(i, j int) bool { return items[i].ProductName < items[j].ProductName })
		groups = append(groups, dto.AdviceGroup{Laboratory: lab, Items: items})
	}
	return groups
}
