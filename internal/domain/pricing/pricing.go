package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// Input son los datos de un lote comprado: cantidad de empaques, nivel de
// empaque elegido, tabla de conversión vigente del producto, costo total
// pagado y margen objetivo. MarginPct puede ser cero o negativo (producto
// gancho), nunca indefinido.
type Input struct {
	Quantity  int64 // empaques comprados
	Level     entity.PackagingLevel
	Packaging entity.PackagingTable
	TotalCost decimal.Decimal
	MarginPct decimal.Decimal
}

// Quote es el resultado del cálculo: cantidad canónica, costo unitario y
// precio de venta sugerido por cada nivel definido para el producto (la unidad
// siempre está definida). Los precios son sugerencias: cada campo queda
// sobreescribible por el operador después del cálculo.
type Quote struct {
	CanonicalQty    int64
	UnitCost        decimal.Decimal
	SuggestedPrices map[entity.PackagingLevel]decimal.Decimal
}

// Compute es una función pura: convierte el lote comprado a unidades canónicas
// y deriva costo unitario y precios sugeridos. Se recalcula ante cualquier
// cambio de entrada sin efectos secundarios.
//
// CantCanónica = Cantidad × UnidadesPorEmpaque(nivel); 1 si el nivel es UNIDAD.
// CostoUnitario = CostoTotal ÷ CantCanónica (indefinido si CantCanónica ≤ 0).
// PrecioUnidad = CostoUnitario × (1 + Margen/100).
// PrecioNivel = PrecioUnidad × ratio del nivel, para cada nivel definido.
func Compute(in Input) (*Quote, error) {
	ratio, ok := in.Packaging.UnitsPer(in.Level)
	if !ok {
		if !entity.ValidLevel(in.Level) {
			return nil, domain.ErrInvalidInput
		}
		return nil, domain.ErrUndefinedPackagingLevel
	}
	canonical := in.Quantity * ratio
	if in.Quantity <= 0 || canonical <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.TotalCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	unitCost := in.TotalCost.Div(decimal.NewFromInt(canonical))

	hundred := decimal.NewFromInt(100)
	factor := decimal.NewFromInt(1).Add(in.MarginPct.Div(hundred))
	unitPrice := unitCost.Mul(factor)

	prices := map[entity.PackagingLevel]decimal.Decimal{
		entity.LevelUnit: unitPrice,
	}
	for _, lvl := range in.Packaging.Levels() {
		r, _ := in.Packaging.UnitsPer(lvl)
		prices[lvl] = unitPrice.Mul(decimal.NewFromInt(r))
	}

	return &Quote{
		CanonicalQty:    canonical,
		UnitCost:        unitCost,
		SuggestedPrices: prices,
	}, nil
}
