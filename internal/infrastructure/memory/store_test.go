package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/memory"
)

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	id, err := s.Create(ctx, docstore.ColProducts, map[string]any{"name": "Silla", "stockQuantity": "10"})
	require.NoError(t, err)
	require.NotEmpty(t, id, "Create debe devolver el id generado")

	doc, err := s.Get(ctx, docstore.ColProducts, id)
	require.NoError(t, err)
	assert.Equal(t, "Silla", doc.Fields["name"])

	// Actualización parcial: los campos no mencionados se conservan
	require.NoError(t, s.Update(ctx, docstore.ColProducts, id, map[string]any{"stockQuantity": "7"}))
	doc, err = s.Get(ctx, docstore.ColProducts, id)
	require.NoError(t, err)
	assert.Equal(t, "7", doc.Fields["stockQuantity"])
	assert.Equal(t, "Silla", doc.Fields["name"])

	docs, err := s.List(ctx, docstore.ColProducts)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, s.Delete(ctx, docstore.ColProducts, id))
	_, err = s.Get(ctx, docstore.ColProducts, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	_, err := s.Get(ctx, docstore.ColSales, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, docstore.ColSales, "no-existe", map[string]any{"x": 1}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, docstore.ColSales, "no-existe"), domain.ErrNotFound)
}

// Increment hace upsert: sobre un documento inexistente parte de cero.
func TestStore_IncrementUpsert(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	n, err := s.Increment(ctx, docstore.ColSystemConfig, docstore.DocInvoiceCounter, "lastInvoiceNumber", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "upsert con delta 0 inicializa el contador en cero")

	n, err = s.Increment(ctx, docstore.ColSystemConfig, docstore.DocInvoiceCounter, "lastInvoiceNumber", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Increment(ctx, docstore.ColSystemConfig, docstore.DocInvoiceCounter, "lastInvoiceNumber", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

// Los documentos devueltos no comparten memoria con el almacén.
func TestStore_AislamientoDeCopias(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	id, err := s.Create(ctx, docstore.ColSales, map[string]any{
		"items": []map[string]any{{"productId": "p1", "quantity": "2"}},
	})
	require.NoError(t, err)

	doc, err := s.Get(ctx, docstore.ColSales, id)
	require.NoError(t, err)
	items := doc.Fields["items"].([]any)
	items[0].(map[string]any)["quantity"] = "999"

	again, err := s.Get(ctx, docstore.ColSales, id)
	require.NoError(t, err)
	fresh := again.Fields["items"].([]any)
	assert.Equal(t, "2", fresh[0].(map[string]any)["quantity"],
		"mutar la copia del llamador no debe afectar al almacén")
}
