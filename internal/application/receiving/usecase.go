package receiving

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/pricing"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// CartUseCase maneja el ciclo de vida del carrito de ingreso: vista previa de
// precios, agregado y retiro de renglones, y el lookup de vencimiento por lote.
type CartUseCase struct {
	store       *CartStore
	productRepo repository.ProductRepository
	movRepo     repository.InventoryMovementRepository
}

// NewCartUseCase construye el caso de uso del carrito.
func NewCartUseCase(
	store *CartStore,
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
) *CartUseCase {
	return &CartUseCase{store: store, productRepo: productRepo, movRepo: movRepo}
}

// mergedPackaging combina la tabla del producto con los overrides del
// operador sin mutar la original.
func mergedPackaging(base entity.PackagingTable, override map[entity.PackagingLevel]int64) entity.PackagingTable {
	if len(override) == 0 {
		return base
	}
	merged := make(entity.PackagingTable, len(base)+len(override))
	for lvl, ratio := range base {
		merged[lvl] = ratio
	}
	for lvl, ratio := range override {
		merged[lvl] = ratio
	}
	return merged
}

// loadProduct obtiene el producto y verifica pertenencia al tenant.
func (uc *CartUseCase) loadProduct(companyID, productID string) (*entity.Product, error) {
	if productID == "" {
		return nil, domain.ErrMissingRequiredField
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

// Preview calcula conversión y precios sugeridos sin tocar el carrito. Se
// invoca en cada cambio de entrada (cantidad, nivel, costo, margen, ratio).
func (uc *CartUseCase) Preview(ctx context.Context, companyID string, in dto.PreviewRequest) (*dto.PreviewResponse, error) {
	product, err := uc.loadProduct(companyID, in.ProductID)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.Compute(pricing.Input{
		Quantity:  in.Quantity,
		Level:     in.Level,
		Packaging: mergedPackaging(product.Packaging, in.PackagingOverride),
		TotalCost: in.TotalCost,
		MarginPct: in.MarginPct,
	})
	if err != nil {
		return nil, err
	}
	return &dto.PreviewResponse{
		CanonicalQty:    quote.CanonicalQty,
		UnitCost:        quote.UnitCost,
		SuggestedPrices: quote.SuggestedPrices,
	}, nil
}

// AddItem valida el renglón y lo agrega al carrito. En error de validación el
// carrito queda intacto y el formulario sigue editable. Si el vencimiento no
// viene y el lote ya se recibió antes, se pre-llena desde el último movimiento
// de ese (producto, lote).
func (uc *CartUseCase) AddItem(ctx context.Context, companyID, userID string, in dto.AddItemRequest) (*dto.CartResponse, error) {
	product, err := uc.loadProduct(companyID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if in.Lot == "" {
		return nil, domain.ErrMissingRequiredField
	}

	packaging := mergedPackaging(product.Packaging, in.PackagingOverride)
	quote, err := pricing.Compute(pricing.Input{
		Quantity:  in.Quantity,
		Level:     in.Level,
		Packaging: packaging,
		TotalCost: in.TotalCost,
		MarginPct: in.MarginPct,
	})
	if err != nil {
		return nil, err
	}

	expiresAt := in.ExpiresAt
	if expiresAt == nil || expiresAt.IsZero() {
		prev, err := uc.movRepo.GetLatestByProductAndLot(companyID, product.ID, in.Lot)
		if err != nil {
			return nil, err
		}
		if prev == nil || prev.ExpiresAt == nil {
			return nil, domain.ErrMissingRequiredField
		}
		expiresAt = prev.ExpiresAt
	}

	// El motor entrega sugerencias; cada precio queda sobreescribible.
	prices := quote.SuggestedPrices
	for lvl, price := range in.PriceOverrides {
		if _, ok := packaging.UnitsPer(lvl); !ok {
			return nil, domain.ErrUndefinedPackagingLevel
		}
		prices[lvl] = price
	}

	item := StagedItem{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Level:        in.Level,
		Quantity:     in.Quantity,
		CanonicalQty: quote.CanonicalQty,
		TotalCost:    in.TotalCost,
		UnitCost:     quote.UnitCost,
		MarginPct:    in.MarginPct,
		Lot:          in.Lot,
		ExpiresAt:    *expiresAt,
		Packaging:    packaging,
		Prices:       prices,
	}

	err = uc.store.Mutate(companyID, userID, func(c *Cart) error {
		if c.State() == CartSubmitting {
			return domain.ErrCartSubmitting
		}
		c.add(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetCart(ctx, companyID, userID), nil
}

// RemoveItem retira un renglón por índice. Agregar y luego retirar deja el
// carrito como estaba (mismos renglones restantes, mismo orden).
func (uc *CartUseCase) RemoveItem(ctx context.Context, companyID, userID string, index int) (*dto.CartResponse, error) {
	err := uc.store.Mutate(companyID, userID, func(c *Cart) error {
		if c.State() == CartSubmitting {
			return domain.ErrCartSubmitting
		}
		return c.remove(index)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetCart(ctx, companyID, userID), nil
}

// GetCart devuelve el estado y los renglones para renderizado.
func (uc *CartUseCase) GetCart(_ context.Context, companyID, userID string) *dto.CartResponse {
	state, items := uc.store.Snapshot(companyID, userID)
	out := &dto.CartResponse{State: state, Items: make([]dto.StagedItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, dto.StagedItemResponse{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Level:        it.Level,
			Quantity:     it.Quantity,
			CanonicalQty: it.CanonicalQty,
			TotalCost:    it.TotalCost,
			UnitCost:     it.UnitCost,
			MarginPct:    it.MarginPct,
			Lot:          it.Lot,
			ExpiresAt:    it.ExpiresAt,
			Prices:       it.Prices,
		})
	}
	return out
}

// LotExpiry busca el vencimiento del último ingreso de ese (producto, lote).
// Lookup de conveniencia, no muta nada.
func (uc *CartUseCase) LotExpiry(ctx context.Context, companyID, productID, lot string) (*dto.LotExpiryResponse, error) {
	if productID == "" || lot == "" {
		return nil, domain.ErrMissingRequiredField
	}
	if _, err := uc.loadProduct(companyID, productID); err != nil {
		return nil, err
	}
	prev, err := uc.movRepo.GetLatestByProductAndLot(companyID, productID, lot)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return &dto.LotExpiryResponse{Found: false}, nil
	}
	return &dto.LotExpiryResponse{Found: true, ExpiresAt: prev.ExpiresAt}, nil
}
