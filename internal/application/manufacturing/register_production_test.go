package manufacturing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/manufacturing"
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

type productionFixture struct {
	uc           *manufacturing.RegisterProductionUseCase
	productRepo  *docrepo.ProductRepo
	materialRepo *docrepo.RawMaterialRepo
	recordRepo   *docrepo.ManufacturingRepo
	product      *entity.Product
	resin        *entity.RawMaterial
	fragrance    *entity.RawMaterial
}

func newProductionFixture(t *testing.T) *productionFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	productRepo := docrepo.NewProductRepository(store)
	materialRepo := docrepo.NewRawMaterialRepository(store)
	recordRepo := docrepo.NewManufacturingRepository(store)

	product := &entity.Product{Name: "Jabón líquido", SalesPrice: dec("100"), InventoryPrice: dec("80"), StockQuantity: dec("0")}
	require.NoError(t, productRepo.Create(ctx, product))
	resin := &entity.RawMaterial{Name: "Resina", Stock: dec("100"), Price: dec("10")}
	require.NoError(t, materialRepo.Create(ctx, resin))
	fragrance := &entity.RawMaterial{Name: "Fragancia", Stock: dec("20"), Price: dec("30")}
	require.NoError(t, materialRepo.Create(ctx, fragrance))

	ledger := stock.NewLedger(productRepo, materialRepo)
	require.NoError(t, ledger.Load(ctx))

	uc := manufacturing.NewRegisterProductionUseCase(recordRepo, productRepo, materialRepo, ledger, logger.Nop())
	return &productionFixture{
		uc:           uc,
		productRepo:  productRepo,
		materialRepo: materialRepo,
		recordRepo:   recordRepo,
		product:      product,
		resin:        resin,
		fragrance:    fragrance,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterProductionUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterProduction_SumaProductoYDescuentaMaterias(t *testing.T) {
	f := newProductionFixture(t)
	ctx := context.Background()

	out, err := f.uc.Register(ctx, dto.CreateManufacturingRequest{
		ProductID: f.product.ID,
		Quantity:  dec("40"),
		Date:      "2024-02-01",
		Materials: []dto.MaterialUsageRequest{
			{MaterialID: f.resin.ID, Quantity: dec("60")},
			{MaterialID: f.fragrance.ID, Quantity: dec("5")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, f.product.Name, out.ProductName)
	require.Len(t, out.MaterialsUsed, 2)
	assert.Equal(t, "Resina", out.MaterialsUsed[0].MaterialName,
		"el consumo guarda el nombre denormalizado")

	product, err := f.productRepo.GetByID(ctx, f.product.ID)
	require.NoError(t, err)
	assert.True(t, product.StockQuantity.Equal(dec("40")))

	resin, err := f.materialRepo.GetByID(ctx, f.resin.ID)
	require.NoError(t, err)
	assert.True(t, resin.Stock.Equal(dec("40")), "100 - 60 de resina")

	fragrance, err := f.materialRepo.GetByID(ctx, f.fragrance.ID)
	require.NoError(t, err)
	assert.True(t, fragrance.Stock.Equal(dec("15")))
}

// Una sola materia insuficiente rechaza la orden completa: no hay consumo
// parcial ni sustitución, y ninguna existencia cambia.
func TestRegisterProduction_ConsumoTodoONada(t *testing.T) {
	f := newProductionFixture(t)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, dto.CreateManufacturingRequest{
		ProductID: f.product.ID,
		Quantity:  dec("10"),
		Date:      "2024-02-01",
		Materials: []dto.MaterialUsageRequest{
			{MaterialID: f.resin.ID, Quantity: dec("50")},
			{MaterialID: f.fragrance.ID, Quantity: dec("25")}, // solo hay 20
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Fragancia")

	resin, err := f.materialRepo.GetByID(ctx, f.resin.ID)
	require.NoError(t, err)
	assert.True(t, resin.Stock.Equal(dec("100")), "la resina suficiente tampoco se consume")

	product, err := f.productRepo.GetByID(ctx, f.product.ID)
	require.NoError(t, err)
	assert.True(t, product.StockQuantity.IsZero())

	records, err := f.recordRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "la orden rechazada no se persiste")
}

func TestRegisterProduction_Validaciones(t *testing.T) {
	f := newProductionFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateManufacturingRequest
	}{
		{"sin producto", dto.CreateManufacturingRequest{
			Quantity:  dec("1"),
			Date:      "2024-02-01",
			Materials: []dto.MaterialUsageRequest{{MaterialID: f.resin.ID, Quantity: dec("1")}},
		}},
		{"cantidad cero", dto.CreateManufacturingRequest{
			ProductID: f.product.ID,
			Quantity:  dec("0"),
			Date:      "2024-02-01",
			Materials: []dto.MaterialUsageRequest{{MaterialID: f.resin.ID, Quantity: dec("1")}},
		}},
		{"sin materias primas", dto.CreateManufacturingRequest{
			ProductID: f.product.ID,
			Quantity:  dec("1"),
			Date:      "2024-02-01",
		}},
		{"consumo cero", dto.CreateManufacturingRequest{
			ProductID: f.product.ID,
			Quantity:  dec("1"),
			Date:      "2024-02-01",
			Materials: []dto.MaterialUsageRequest{{MaterialID: f.resin.ID, Quantity: dec("0")}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Register(ctx, tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
