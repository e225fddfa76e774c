package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/pricing"
)

// Escenario de referencia: 2 cajas de 10 unidades, costo total 100, margen 25%
// → 20 unidades canónicas, costo unitario 5.00, precio unidad sugerido 6.25 y
// precio caja sugerido 62.50.
func TestCompute_CompraPorCaja(t *testing.T) {
	q, err := pricing.Compute(pricing.Input{
		Quantity:  2,
		Level:     entity.LevelBox,
		Packaging: entity.PackagingTable{entity.LevelBox: 10},
		TotalCost: decimal.NewFromInt(100),
		MarginPct: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 20, q.CanonicalQty)
	assert.True(t, q.UnitCost.Equal(decimal.NewFromInt(5)), "costo unitario = 100/20 = 5, obtuvo %s", q.UnitCost)
	assert.True(t, q.SuggestedPrices[entity.LevelUnit].Equal(decimal.RequireFromString("6.25")),
		"precio unidad = 5 × 1.25 = 6.25, obtuvo %s", q.SuggestedPrices[entity.LevelUnit])
	assert.True(t, q.SuggestedPrices[entity.LevelBox].Equal(decimal.RequireFromString("62.5")),
		"precio caja = 6.25 × 10 = 62.50, obtuvo %s", q.SuggestedPrices[entity.LevelBox])
}

// Compra por unidad: el ratio es 1 y no se requiere tabla de conversión.
func TestCompute_CompraPorUnidad(t *testing.T) {
	q, err := pricing.Compute(pricing.Input{
		Quantity:  30,
		Level:     entity.LevelUnit,
		Packaging: nil,
		TotalCost: decimal.NewFromInt(60),
		MarginPct: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 30, q.CanonicalQty)
	assert.True(t, q.UnitCost.Equal(decimal.NewFromInt(2)))
	assert.True(t, q.SuggestedPrices[entity.LevelUnit].Equal(decimal.NewFromInt(3)))
	// Sin tabla de conversión solo existe el precio por unidad.
	assert.Len(t, q.SuggestedPrices, 1)
}

// Todos los niveles definidos reciben precio sugerido, aunque la compra haya
// sido por otro nivel.
func TestCompute_SugierePrecioParaTodosLosNiveles(t *testing.T) {
	q, err := pricing.Compute(pricing.Input{
		Quantity: 5,
		Level:    entity.LevelBlister,
		Packaging: entity.PackagingTable{
			entity.LevelBlister: 12,
			entity.LevelBox:     120,
		},
		TotalCost: decimal.NewFromInt(300),
		MarginPct: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	// 60 unidades a costo 5; precio unidad 6.
	assert.EqualValues(t, 60, q.CanonicalQty)
	assert.True(t, q.SuggestedPrices[entity.LevelUnit].Equal(decimal.NewFromInt(6)))
	assert.True(t, q.SuggestedPrices[entity.LevelBlister].Equal(decimal.NewFromInt(72)))
	assert.True(t, q.SuggestedPrices[entity.LevelBox].Equal(decimal.NewFromInt(720)))
}

// Margen cero o negativo es válido (producto gancho): el precio sugerido puede
// quedar por debajo del costo.
func TestCompute_MargenNegativo(t *testing.T) {
	q, err := pricing.Compute(pricing.Input{
		Quantity:  10,
		Level:     entity.LevelUnit,
		TotalCost: decimal.NewFromInt(100),
		MarginPct: decimal.NewFromInt(-10),
	})
	require.NoError(t, err)
	assert.True(t, q.SuggestedPrices[entity.LevelUnit].Equal(decimal.NewFromInt(9)),
		"10 × 0.90 = 9, obtuvo %s", q.SuggestedPrices[entity.LevelUnit])
}

// Nivel pedido sin ratio definido para el producto → ErrUndefinedPackagingLevel.
func TestCompute_NivelNoDefinido(t *testing.T) {
	_, err := pricing.Compute(pricing.Input{
		Quantity:  1,
		Level:     entity.LevelBox,
		Packaging: entity.PackagingTable{entity.LevelBlister: 10},
		TotalCost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrUndefinedPackagingLevel)
}

// Cantidad cero o negativa → ErrInvalidQuantity (la división queda indefinida).
func TestCompute_CantidadInvalida(t *testing.T) {
	for _, qty := range []int64{0, -3} {
		_, err := pricing.Compute(pricing.Input{
			Quantity:  qty,
			Level:     entity.LevelUnit,
			TotalCost: decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d debe rechazarse", qty)
	}
}

// Ratio definido pero no positivo se trata como nivel no definido.
func TestCompute_RatioCeroNoAplica(t *testing.T) {
	_, err := pricing.Compute(pricing.Input{
		Quantity:  2,
		Level:     entity.LevelPack,
		Packaging: entity.PackagingTable{entity.LevelPack: 0},
		TotalCost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrUndefinedPackagingLevel)
}

// Costo total negativo se rechaza antes de dividir.
func TestCompute_CostoNegativo(t *testing.T) {
	_, err := pricing.Compute(pricing.Input{
		Quantity:  1,
		Level:     entity.LevelUnit,
		TotalCost: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Nivel desconocido (string arbitrario) → ErrInvalidInput, no panic.
func TestCompute_NivelDesconocido(t *testing.T) {
	_, err := pricing.Compute(pricing.Input{
		Quantity:  1,
		Level:     entity.PackagingLevel("DOCENA"),
		TotalCost: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
