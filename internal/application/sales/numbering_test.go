package sales_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/application/sales"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests InvoiceNumbering
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceNumbering_SecuenciaDesdeCero(t *testing.T) {
	store := memory.NewStore()
	numbering := sales.NewInvoiceNumbering(store)
	ctx := context.Background()

	require.NoError(t, numbering.Ensure(ctx))

	first, err := numbering.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "00001", first)

	second, err := numbering.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "00002", second)

	current, err := numbering.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), current, "Current no consume números")
}

func TestInvoiceNumbering_EnsureEsIdempotente(t *testing.T) {
	store := memory.NewStore()
	numbering := sales.NewInvoiceNumbering(store)
	ctx := context.Background()

	require.NoError(t, numbering.Ensure(ctx))
	_, err := numbering.Next(ctx)
	require.NoError(t, err)

	// Un segundo Ensure no reinicia un contador activo.
	require.NoError(t, numbering.Ensure(ctx))
	n, err := numbering.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestInvoiceNumbering_SinDuplicadosBajoConcurrencia(t *testing.T) {
	store := memory.NewStore()
	numbering := sales.NewInvoiceNumbering(store)
	ctx := context.Background()
	require.NoError(t, numbering.Ensure(ctx))

	const callers = 50
	var wg sync.WaitGroup
	results := make(chan string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := numbering.Next(ctx)
			assert.NoError(t, err)
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, callers)
	for n := range results {
		assert.False(t, seen[n], "número de factura duplicado: %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, callers)
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "00001", sales.FormatInvoiceNumber(1))
	assert.Equal(t, "00123", sales.FormatInvoiceNumber(123))
	assert.Equal(t, "123456", sales.FormatInvoiceNumber(123456), "más de 5 dígitos no se trunca")
}
