package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/purchasing"
	"github.com/tu-usuario/negocio-pro/internal/application/stock"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/docrepo"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type purchaseFixture struct {
	uc           *purchasing.RegisterPurchaseUseCase
	materialRepo *docrepo.RawMaterialRepo
	purchaseRepo *docrepo.PurchaseRepo
	supplier     *entity.Supplier
	resin        *entity.RawMaterial
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	productRepo := docrepo.NewProductRepository(store)
	materialRepo := docrepo.NewRawMaterialRepository(store)
	supplierRepo := docrepo.NewSupplierRepository(store)
	purchaseRepo := docrepo.NewPurchaseRepository(store)

	supplier := &entity.Supplier{Name: "Insumos SA", Address: "Bodega 4"}
	require.NoError(t, supplierRepo.Create(ctx, supplier))
	resin := &entity.RawMaterial{Name: "Resina", Stock: dec("100"), Price: dec("10")}
	require.NoError(t, materialRepo.Create(ctx, resin))

	ledger := stock.NewLedger(productRepo, materialRepo)
	require.NoError(t, ledger.Load(ctx))

	uc := purchasing.NewRegisterPurchaseUseCase(purchaseRepo, supplierRepo, materialRepo, ledger, logger.Nop())
	return &purchaseFixture{uc: uc, materialRepo: materialRepo, purchaseRepo: purchaseRepo, supplier: supplier, resin: resin}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterPurchaseUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterPurchase_SumaStockSinCambiarPrecioIgual(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	out, err := f.uc.Register(ctx, dto.CreatePurchaseRequest{
		SupplierID:    f.supplier.ID,
		InvoiceNumber: "FV-881",
		Date:          "2024-03-01",
		Items:         []dto.PurchaseItemRequest{{MaterialID: f.resin.ID, Quantity: dec("50"), Price: dec("10")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "FV-881", out.InvoiceNumber)
	assert.Equal(t, "Insumos SA", out.SupplierName)
	assert.True(t, out.Subtotal.Equal(dec("500")))

	resin, err := f.materialRepo.GetByID(ctx, f.resin.ID)
	require.NoError(t, err)
	assert.True(t, resin.Stock.Equal(dec("150")), "100 + 50 comprados")
	assert.True(t, resin.Price.Equal(dec("10")), "mismo precio, no se reescribe")
}

// El último precio de compra sobreescribe el de la materia prima; no se
// conserva historial de precios.
func TestRegisterPurchase_UltimoPrecioGana(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, dto.CreatePurchaseRequest{
		SupplierID: f.supplier.ID,
		Date:       "2024-03-01",
		Items:      []dto.PurchaseItemRequest{{MaterialID: f.resin.ID, Quantity: dec("20"), Price: dec("12.50")}},
	})
	require.NoError(t, err)

	resin, err := f.materialRepo.GetByID(ctx, f.resin.ID)
	require.NoError(t, err)
	assert.True(t, resin.Price.Equal(dec("12.50")))
	assert.True(t, resin.Stock.Equal(dec("120")))
}

func TestRegisterPurchase_FacturaVaciaSeRegistraComoGuion(t *testing.T) {
	f := newPurchaseFixture(t)

	out, err := f.uc.Register(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: f.supplier.ID,
		Date:       "2024-03-01",
		Items:      []dto.PurchaseItemRequest{{MaterialID: f.resin.ID, Quantity: dec("1"), Price: dec("10")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "-", out.InvoiceNumber)
}

// El número de factura del proveedor es texto libre: dos compras pueden traer
// el mismo y ambas quedan registradas.
func TestRegisterPurchase_NumeroDeFacturaRepetido(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.uc.Register(ctx, dto.CreatePurchaseRequest{
			SupplierID:    f.supplier.ID,
			InvoiceNumber: "FV-100",
			Date:          "2024-03-01",
			Items:         []dto.PurchaseItemRequest{{MaterialID: f.resin.ID, Quantity: dec("5"), Price: dec("10")}},
		})
		require.NoError(t, err)
	}

	purchases, err := f.purchaseRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, purchases, 2)
}

func TestRegisterPurchase_Validaciones(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreatePurchaseRequest
	}{
		{"sin proveedor", dto.CreatePurchaseRequest{
			Date:  "2024-03-01",
			Items: []dto.PurchaseItemRequest{{MaterialID: f.resin.ID, Quantity: dec("1"), Price: dec("10")}},
		}},
		{"sin líneas", dto.CreatePurchaseRequest{
			SupplierID: f.supplier.ID,
			Date:       "2024-03-01",
		}},
		{"cantidad cero", dto.CreatePurchaseRequest{
			SupplierID: f.supplier.ID,
			Date:       "2024-03-01",
			Items:      []dto.PurchaseItemRequest{{MaterialID: f.resin.ID, Quantity: dec("0"), Price: dec("10")}},
		}},
		{"precio negativo", dto.CreatePurchaseRequest{
			SupplierID: f.supplier.ID,
			Date:       "2024-03-01",
			Items:      []dto.PurchaseItemRequest{{MaterialID: f.resin.ID, Quantity: dec("1"), Price: dec("-1")}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Register(ctx, tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	purchases, err := f.purchaseRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, purchases, "las compras rechazadas no se persisten")
}
