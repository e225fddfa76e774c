package replenishment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/replenishment"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

func newAdvisor(products []*entity.Product, suppliers []*entity.Supplier) *replenishment.AdvisorUseCase {
	return replenishment.NewAdvisorUseCase(
		&fakeProductRepo{products: products},
		&fakeSupplierRepo{suppliers: suppliers},
		replenishment.Config{},
	)
}

func TestAdvise_CriticoCuandoStockBajoElMinimo(t *testing.T) {
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Amoxicilina", "Genfar", 5, 10),
		catalogProduct("p2", "Loratadina", "MK", 80, 10), // sano
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, dto.SeverityCritical, out.Severity)
	require.Len(t, out.Groups, 1)
	require.Len(t, out.Groups[0].Items, 1)
	item := out.Groups[0].Items[0]
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, int64(10), item.SuggestedQty, "sugerencia: max(10-5, 10) = 10")
	assert.True(t, item.Selected, "los candidatos arrancan seleccionados")
}

func TestAdvise_StockIgualAlMinimo_EsCritico(t *testing.T) {
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Amoxicilina", "Genfar", 10, 10),
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, dto.SeverityCritical, out.Severity)
}

func TestAdvise_MinimoCero_ReposicionDeshabilitada(t *testing.T) {
	// Mínimo 0 es política explícita: ese producto nunca es crítico, ni con stock 0.
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Suero oral", "", 0, 0),
		catalogProduct("p2", "Loratadina", "MK", 80, 10),
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, dto.SeverityNone, out.Severity, "stock 0 con mínimo 0 no dispara reposición")
}

func TestAdvise_PreventivoSoloSinCriticos(t *testing.T) {
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Amoxicilina", "Genfar", 30, 10), // bajo el techo de 50
		catalogProduct("p2", "Loratadina", "MK", 80, 10),
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, dto.SeverityProactive, out.Severity)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, int64(20), out.Groups[0].Items[0].SuggestedQty, "sugerencia preventiva: 50 - 30 = 20")
}

func TestAdvise_UnCriticoOcultaLosPreventivos(t *testing.T) {
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Amoxicilina", "Genfar", 5, 10),  // crítico
		catalogProduct("p2", "Loratadina", "MK", 30, 10),      // sería preventivo
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, dto.SeverityCritical, out.Severity)
	require.Len(t, out.Groups, 1)
	assert.Equal(t, "Genfar", out.Groups[0].Laboratory)
}

func TestAdvise_PreventivoIgnoraStockCero(t *testing.T) {
	// Stock 0 sin mínimo no entra al preventivo (el rango es 0 < stock < techo).
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Suero oral", "", 0, 0),
		catalogProduct("p2", "Loratadina", "MK", 100, 0),
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, dto.SeverityNone, out.Severity)
}

func TestAdvise_AgrupaPorLaboratorioOrdenado(t *testing.T) {
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Zinc", "MK", 2, 10),
		catalogProduct("p2", "Amoxicilina", "Genfar", 3, 10),
		catalogProduct("p3", "Acetaminofén", "Genfar", 1, 10),
		catalogProduct("p4", "Suero oral", "", 4, 10), // sin laboratorio
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)

	require.Len(t, out.Groups, 3)
	assert.Equal(t, "Genfar", out.Groups[0].Laboratory)
	assert.Equal(t, "MK", out.Groups[1].Laboratory)
	assert.Equal(t, replenishment.UnassignedGroup, out.Groups[2].Laboratory)

	// Renglones ordenados por nombre dentro del grupo.
	genfar := out.Groups[0].Items
	require.Len(t, genfar, 2)
	assert.Equal(t, "Acetaminofén", genfar[0].ProductName)
	assert.Equal(t, "Amoxicilina", genfar[1].ProductName)
}

func TestAdvise_IncluyeProveedoresParaAsignacion(t *testing.T) {
	uc := newAdvisor(
		[]*entity.Product{catalogProduct("p1", "Amoxicilina", "Genfar", 5, 10)},
		[]*entity.Supplier{testSupplier("s1", "Droguería Central", "Genfar")},
	)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)

	require.Len(t, out.Suppliers, 1)
	assert.Equal(t, "Droguería Central", out.Suppliers[0].Name)
}

func TestAdvise_CatalogoSano_SinNecesidad(t *testing.T) {
	uc := newAdvisor([]*entity.Product{
		catalogProduct("p1", "Amoxicilina", "Genfar", 200, 10),
	}, nil)

	out, err := uc.Advise(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, dto.SeverityNone, out.Severity)
	assert.Empty(t, out.Groups)
}
