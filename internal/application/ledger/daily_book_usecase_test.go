package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	appledger "github.com/tu-usuario/negocio-pro/internal/application/ledger"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/docrepo"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := entity.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newDailyBookUC(t *testing.T) (*appledger.DailyBookUseCase, *docrepo.SaleRepo, *docrepo.ExpenseRepo, *docrepo.PurchaseRepo) {
	t.Helper()
	store := memory.NewStore()
	saleRepo := docrepo.NewSaleRepository(store)
	expenseRepo := docrepo.NewExpenseRepository(store)
	purchaseRepo := docrepo.NewPurchaseRepository(store)
	return appledger.NewDailyBookUseCase(saleRepo, expenseRepo, purchaseRepo), saleRepo, expenseRepo, purchaseRepo
}

func TestDailyBookUseCase_ReconstruyeDesdeElAlmacen(t *testing.T) {
	uc, saleRepo, expenseRepo, purchaseRepo := newDailyBookUC(t)
	ctx := context.Background()

	require.NoError(t, saleRepo.Create(ctx, &entity.Sale{
		InvoiceNumber: "00001", CustomerID: "c1", CustomerName: "Don Pedro",
		Items:    []entity.SaleItem{{ProductID: "p1", ProductName: "Jabón", Quantity: dec("5"), Price: dec("100"), Total: dec("500")}},
		Subtotal: dec("500"), Discount: dec("0"), Total: dec("500"), Date: day(t, "2024-01-10"),
	}))
	require.NoError(t, expenseRepo.Create(ctx, &entity.Expense{
		Name: "Electricidad", Amount: dec("200"), Date: day(t, "2024-01-15"),
	}))
	require.NoError(t, purchaseRepo.Create(ctx, &entity.Purchase{
		InvoiceNumber: "-", SupplierID: "s1", SupplierName: "Insumos SA",
		Items:    []entity.PurchaseItem{{MaterialID: "m1", MaterialName: "Resina", Quantity: dec("30"), Price: dec("10"), Total: dec("300")}},
		Subtotal: dec("300"), Date: day(t, "2024-01-05"),
	}))

	out, err := uc.Build(ctx, dto.DailyBookRequest{
		StartDate:      "2024-01-01",
		EndDate:        "2024-01-31",
		OpeningBalance: dec("1000"),
	})
	require.NoError(t, err)
	require.Len(t, out.Entries, 4)

	assert.Equal(t, "OPENING", out.Entries[0].Type)
	assert.Equal(t, "2024-01-01", out.Entries[0].Date)

	assert.Equal(t, "PURCHASE", out.Entries[1].Type)
	assert.Equal(t, "Purchase from Insumos SA", out.Entries[1].Description)
	assert.True(t, out.Entries[1].Balance.Equal(dec("700")))

	assert.Equal(t, "SALE", out.Entries[2].Type)
	assert.Equal(t, "Sale to Don Pedro", out.Entries[2].Description)
	assert.Equal(t, "00001", out.Entries[2].Reference)
	assert.True(t, out.Entries[2].Balance.Equal(dec("1200")))

	assert.Equal(t, "EXPENSE", out.Entries[3].Type)
	assert.Equal(t, "Electricidad", out.Entries[3].Description)
	assert.True(t, out.Entries[3].Balance.Equal(dec("1000")))
}

func TestDailyBookUseCase_RangoInvalido(t *testing.T) {
	uc, _, _, _ := newDailyBookUC(t)
	ctx := context.Background()

	_, err := uc.Build(ctx, dto.DailyBookRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Build(ctx, dto.DailyBookRequest{StartDate: "01/01/2024", EndDate: "2024-01-31"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
