package receiving_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/receiving"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

func newCommitFixture(t *testing.T) (*receiving.CartUseCase, *receiving.CommitUseCase, *fakeProductRepo, *fakeMovementRepo) {
	t.Helper()
	productRepo := newFakeProductRepo(
		testProduct("prod-1", "Acetaminofén 500mg"),
		testProduct("prod-2", "Ibuprofeno 400mg"),
	)
	movRepo := &fakeMovementRepo{}
	store := receiving.NewCartStore()
	cartUC := receiving.NewCartUseCase(store, productRepo, movRepo)
	commitUC := receiving.NewCommitUseCase(store, &fakeTxRunner{productRepo: productRepo, movRepo: movRepo})
	return cartUC, commitUC, productRepo, movRepo
}

func commitRequest() dto.CommitRequest {
	return dto.CommitRequest{SupplierName: "Droguería Central", InvoiceNumber: "FAC-1001"}
}

func stageItem(t *testing.T, cartUC *receiving.CartUseCase, productID string) {
	t.Helper()
	in := addItemRequest()
	in.ProductID = productID
	_, err := cartUC.AddItem(context.Background(), testCompanyID, testUserID, in)
	require.NoError(t, err)
}

func TestCommit_CarritoVacio_Rechaza(t *testing.T) {
	_, commitUC, _, _ := newCommitFixture(t)

	_, err := commitUC.Commit(context.Background(), testCompanyID, testUserID, commitRequest())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCommit_SinProveedorOFactura_Rechaza(t *testing.T) {
	cartUC, commitUC, _, _ := newCommitFixture(t)
	stageItem(t, cartUC, "prod-1")

	in := commitRequest()
	in.SupplierName = ""
	_, err := commitUC.Commit(context.Background(), testCompanyID, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)

	in = commitRequest()
	in.InvoiceNumber = ""
	_, err = commitUC.Commit(context.Background(), testCompanyID, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)

	cart := cartUC.GetCart(context.Background(), testCompanyID, testUserID)
	assert.Equal(t, receiving.CartStaging, cart.State, "la validación no consume el carrito")
}

func TestCommit_TodosLosRenglonesOK(t *testing.T) {
	cartUC, commitUC, productRepo, movRepo := newCommitFixture(t)
	stageItem(t, cartUC, "prod-1")
	stageItem(t, cartUC, "prod-2")

	out, err := commitUC.Commit(context.Background(), testCompanyID, testUserID, commitRequest())
	require.NoError(t, err)

	assert.Equal(t, "FAC-1001", out.InvoiceNumber)
	assert.Equal(t, 2, out.Committed)
	require.Len(t, out.Items, 2)
	for _, item := range out.Items {
		assert.Equal(t, "OK", item.Status)
	}

	// Stock canónico: 100 iniciales + 2 cajas de 100 unidades.
	p1, _ := productRepo.GetByID("prod-1")
	assert.Equal(t, int64(300), p1.Stock)
	assert.Equal(t, "L-001", p1.Lot)

	// Un movimiento inmutable por renglón, con los datos de la factura.
	require.Len(t, movRepo.movements, 2)
	assert.Equal(t, "Droguería Central", movRepo.movements[0].SupplierName)
	assert.Equal(t, "FAC-1001", movRepo.movements[0].InvoiceNumber)
	assert.Equal(t, testUserID, movRepo.movements[0].CreatedBy)

	cart := cartUC.GetCart(context.Background(), testCompanyID, testUserID)
	assert.Equal(t, receiving.CartEmpty, cart.State, "el commit exitoso vacía el carrito")
}

func TestCommit_FalloParcial_ReportaPorRenglon(t *testing.T) {
	cartUC, commitUC, productRepo, movRepo := newCommitFixture(t)
	stageItem(t, cartUC, "prod-1")
	stageItem(t, cartUC, "prod-2")

	productRepo.failApplyFor = "prod-2"

	_, err := commitUC.Commit(context.Background(), testCompanyID, testUserID, commitRequest())
	require.Error(t, err)

	var partial *receiving.PartialCommitError
	require.ErrorAs(t, err, &partial, "un commit con fallos nunca se reporta como éxito")

	assert.Equal(t, 1, partial.Committed)
	require.Len(t, partial.Results, 2)
	assert.Equal(t, "OK", partial.Results[0].Status)
	assert.Equal(t, "ERROR", partial.Results[1].Status)
	assert.NotEmpty(t, partial.Results[1].Error)

	// El renglón exitoso persiste; el fallido no deja rastro (tx por renglón).
	p1, _ := productRepo.GetByID("prod-1")
	assert.Equal(t, int64(300), p1.Stock)
	p2, _ := productRepo.GetByID("prod-2")
	assert.Equal(t, int64(100), p2.Stock, "el producto del renglón fallido queda intacto")
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, "prod-1", movRepo.movements[0].ProductID)

	cart := cartUC.GetCart(context.Background(), testCompanyID, testUserID)
	assert.Equal(t, receiving.CartFailed, cart.State, "el carrito conserva los renglones para conciliar")
	assert.Len(t, cart.Items, 2)
}

func TestCommit_ProductoEliminadoEntreAgregarYConfirmar(t *testing.T) {
	cartUC, commitUC, productRepo, _ := newCommitFixture(t)
	stageItem(t, cartUC, "prod-1")

	delete(productRepo.products, "prod-1")

	_, err := commitUC.Commit(context.Background(), testCompanyID, testUserID, commitRequest())
	var partial *receiving.PartialCommitError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 0, partial.Committed)
	assert.Equal(t, "ERROR", partial.Results[0].Status)
}

func TestCommit_ReintentoDespuesDeFalloParcial(t *testing.T) {
	cartUC, commitUC, productRepo, _ := newCommitFixture(t)
	stageItem(t, cartUC, "prod-1")
	productRepo.failApplyFor = "prod-1"

	_, err := commitUC.Commit(context.Background(), testCompanyID, testUserID, commitRequest())
	require.Error(t, err)

	// Se resuelve la causa y el operador reintenta con el mismo carrito.
	productRepo.failApplyFor = ""
	out, err := commitUC.Commit(context.Background(), testCompanyID, testUserID, commitRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Committed)

	cart := cartUC.GetCart(context.Background(), testCompanyID, testUserID)
	assert.Equal(t, receiving.CartEmpty, cart.State)
}
