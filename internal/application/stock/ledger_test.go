package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/application/stock"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/docrepo"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newLedger(t *testing.T) (*stock.Ledger, *docrepo.ProductRepo, *docrepo.RawMaterialRepo) {
	t.Helper()
	store := memory.NewStore()
	productRepo := docrepo.NewProductRepository(store)
	materialRepo := docrepo.NewRawMaterialRepository(store)
	return stock.NewLedger(productRepo, materialRepo), productRepo, materialRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_LoadCalientaElEspejo(t *testing.T) {
	ledger, productRepo, materialRepo := newLedger(t)
	ctx := context.Background()

	product := &entity.Product{Name: "Jabón", SalesPrice: dec("10"), InventoryPrice: dec("8"), StockQuantity: dec("25")}
	require.NoError(t, productRepo.Create(ctx, product))
	material := &entity.RawMaterial{Name: "Resina", Stock: dec("100"), Price: dec("5")}
	require.NoError(t, materialRepo.Create(ctx, material))

	require.NoError(t, ledger.Load(ctx))

	got, ok := ledger.ProductStock(product.ID)
	require.True(t, ok, "el producto debe estar en el espejo tras Load")
	assert.True(t, got.Equal(dec("25")))

	got, ok = ledger.MaterialStock(material.ID)
	require.True(t, ok)
	assert.True(t, got.Equal(dec("100")))
}

func TestLedger_ApplyDeltaPersisteYActualizaEspejo(t *testing.T) {
	ledger, productRepo, _ := newLedger(t)
	ctx := context.Background()

	product := &entity.Product{Name: "Jabón", SalesPrice: dec("10"), InventoryPrice: dec("8"), StockQuantity: dec("25")}
	require.NoError(t, productRepo.Create(ctx, product))
	require.NoError(t, ledger.Load(ctx))

	require.NoError(t, ledger.ApplyProductDelta(ctx, product.ID, dec("-5")))

	// Espejo actualizado
	got, ok := ledger.ProductStock(product.ID)
	require.True(t, ok)
	assert.True(t, got.Equal(dec("20")))

	// Y también el almacén
	stored, err := productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, stored.StockQuantity.Equal(dec("20")),
		"una lectura posterior a la mutación debe reflejarla")
}

func TestLedger_ApplyDeltaSobreIdNoVisto(t *testing.T) {
	ledger, _, materialRepo := newLedger(t)
	ctx := context.Background()

	// Alta posterior al Load: el ledger no la conoce todavía.
	require.NoError(t, ledger.Load(ctx))
	material := &entity.RawMaterial{Name: "Resina", Stock: dec("30"), Price: dec("5")}
	require.NoError(t, materialRepo.Create(ctx, material))

	require.NoError(t, ledger.ApplyMaterialDelta(ctx, material.ID, dec("12")))

	got, ok := ledger.MaterialStock(material.ID)
	require.True(t, ok, "tras aplicar el delta el id queda en el espejo")
	assert.True(t, got.Equal(dec("42")), "el delta parte del stock persistido")
}

func TestLedger_TrackYForget(t *testing.T) {
	ledger, _, _ := newLedger(t)

	ledger.TrackProduct("p1", dec("7"))
	got, ok := ledger.ProductStock("p1")
	require.True(t, ok)
	assert.True(t, got.Equal(dec("7")))

	ledger.ForgetProduct("p1")
	_, ok = ledger.ProductStock("p1")
	assert.False(t, ok, "un producto eliminado sale del espejo")
}
