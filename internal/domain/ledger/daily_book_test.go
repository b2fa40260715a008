package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := entity.ParseDate(s)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixtureJanuary(t *testing.T) ([]*entity.Sale, []*entity.Expense, []*entity.Purchase) {
	t.Helper()
	sales := []*entity.Sale{
		{InvoiceNumber: "00007", CustomerName: "Don Pedro", Total: dec("500"), Date: day(t, "2024-01-10")},
	}
	expenses := []*entity.Expense{
		{Name: "Electricidad", Amount: dec("200"), Date: day(t, "2024-01-15")},
	}
	purchases := []*entity.Purchase{
		{InvoiceNumber: "-", SupplierName: "Insumos SA", Subtotal: dec("300"), Date: day(t, "2024-01-05")},
	}
	return sales, expenses, purchases
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BuildDailyBook
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: apertura 1000, una compra (300), una venta (500) y
// un gasto (200) en enero. Orden esperado estrictamente por fecha:
// Opening(1000) → Purchase(700) → Sale(1200) → Expense(1000).
func TestBuildDailyBook_EscenarioEnero(t *testing.T) {
	sales, expenses, purchases := fixtureJanuary(t)

	entries := ledger.BuildDailyBook(
		sales, expenses, purchases,
		day(t, "2024-01-01"), day(t, "2024-01-31"),
		dec("1000"),
	)

	require.Len(t, entries, 4)

	assert.Equal(t, ledger.EntryOpening, entries[0].Type)
	assert.True(t, entries[0].Balance.Equal(dec("1000")), "el asiento de apertura lleva el saldo inicial")
	assert.True(t, entries[0].Credit.IsZero() && entries[0].Debit.IsZero(),
		"la apertura no acredita ni debita")
	assert.Equal(t, day(t, "2024-01-01"), entries[0].Date, "la apertura se fecha al inicio del rango")

	assert.Equal(t, ledger.EntryPurchase, entries[1].Type)
	assert.True(t, entries[1].Debit.Equal(dec("300")))
	assert.True(t, entries[1].Balance.Equal(dec("700")))

	assert.Equal(t, ledger.EntrySale, entries[2].Type)
	assert.True(t, entries[2].Credit.Equal(dec("500")))
	assert.True(t, entries[2].Balance.Equal(dec("1200")))
	assert.Equal(t, "00007", entries[2].Reference, "la venta referencia su número de factura")

	assert.Equal(t, ledger.EntryExpense, entries[3].Type)
	assert.True(t, entries[3].Debit.Equal(dec("200")))
	assert.True(t, entries[3].Balance.Equal(dec("1000")))
}

// El libro es idempotente: dos corridas con el mismo input producen la misma lista.
func TestBuildDailyBook_Idempotente(t *testing.T) {
	sales, expenses, purchases := fixtureJanuary(t)
	start, end := day(t, "2024-01-01"), day(t, "2024-01-31")

	primera := ledger.BuildDailyBook(sales, expenses, purchases, start, end, dec("1000"))
	segunda := ledger.BuildDailyBook(sales, expenses, purchases, start, end, dec("1000"))

	assert.Equal(t, primera, segunda)
}

// El saldo final debe cumplir la identidad:
// apertura + Σ ventas.total − Σ gastos.amount − Σ compras.subtotal (dentro del rango).
func TestBuildDailyBook_IdentidadDeSaldo(t *testing.T) {
	sales := []*entity.Sale{
		{CustomerName: "A", Total: dec("150.50"), Date: day(t, "2024-03-02")},
		{CustomerName: "B", Total: dec("99.25"), Date: day(t, "2024-03-20")},
		{CustomerName: "C", Total: dec("1000"), Date: day(t, "2024-04-01")}, // fuera de rango
	}
	expenses := []*entity.Expense{
		{Name: "Flete", Amount: dec("40"), Date: day(t, "2024-03-10")},
	}
	purchases := []*entity.Purchase{
		{SupplierName: "X", Subtotal: dec("75.75"), Date: day(t, "2024-03-05")},
		{SupplierName: "Y", Subtotal: dec("10"), Date: day(t, "2024-02-28")}, // fuera de rango
	}

	entries := ledger.BuildDailyBook(
		sales, expenses, purchases,
		day(t, "2024-03-01"), day(t, "2024-03-31"),
		dec("500"),
	)

	// 500 + 150.50 + 99.25 − 40 − 75.75 = 634
	esperado := dec("634")
	final := entries[len(entries)-1].Balance
	assert.True(t, final.Equal(esperado), "saldo final %s, esperado %s", final, esperado)

	// Las transacciones fuera de rango no generan asiento
	require.Len(t, entries, 5)
	for _, e := range entries {
		assert.False(t, e.Date.Before(day(t, "2024-03-01")))
		assert.False(t, e.Date.After(day(t, "2024-03-31")))
	}
}

// Empates de fecha entre tipos distintos: se conserva el orden de concatenación
// ventas → gastos → compras (orden estable, sin clave secundaria).
func TestBuildDailyBook_EmpatesDeFechaEstables(t *testing.T) {
	d := "2024-05-05"
	sales := []*entity.Sale{{CustomerName: "S", Total: dec("10"), Date: day(t, d)}}
	expenses := []*entity.Expense{{Name: "G", Amount: dec("5"), Date: day(t, d)}}
	purchases := []*entity.Purchase{{SupplierName: "P", Subtotal: dec("3"), Date: day(t, d)}}

	entries := ledger.BuildDailyBook(
		sales, expenses, purchases,
		day(t, "2024-05-01"), day(t, "2024-05-31"),
		decimal.Zero,
	)

	require.Len(t, entries, 4)
	assert.Equal(t, ledger.EntrySale, entries[1].Type)
	assert.Equal(t, ledger.EntryExpense, entries[2].Type)
	assert.Equal(t, ledger.EntryPurchase, entries[3].Type)
	assert.True(t, entries[3].Balance.Equal(dec("2")), "10 − 5 − 3 = 2")
}

// Rango sin transacciones: solo el asiento de apertura.
func TestBuildDailyBook_RangoVacio(t *testing.T) {
	entries := ledger.BuildDailyBook(
		nil, nil, nil,
		day(t, "2024-01-01"), day(t, "2024-01-31"),
		dec("-250"),
	)

	require.Len(t, entries, 1)
	assert.Equal(t, ledger.EntryOpening, entries[0].Type)
	assert.True(t, entries[0].Balance.Equal(dec("-250")), "la apertura admite saldos negativos")
}
