package docrepo

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo adaptador de persistencia para Expense (solo-inserción).
type ExpenseRepo struct {
	store docstore.Store
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(store docstore.Store) *ExpenseRepo {
	return &ExpenseRepo{store: store}
}

// List devuelve todos los gastos.
func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	docs, err := r.store.List(ctx, docstore.ColExpenses)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	expenses := make([]*entity.Expense, 0, len(docs))
	for _, doc := range docs {
		amount, err := decField(doc.Fields, "amount")
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", doc.ID, err)
		}
		date, err := dateField(doc.Fields, "date")
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", doc.ID, err)
		}
		expenses = append(expenses, &entity.Expense{
			ID:            doc.ID,
			InvoiceNumber: strField(doc.Fields, "invoiceNumber"),
			Date:          date,
			Name:          strField(doc.Fields, "name"),
			Amount:        amount,
		})
	}
	return expenses, nil
}

// Create persiste el gasto y asigna el id generado.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	id, err := r.store.Create(ctx, docstore.ColExpenses, map[string]any{
		"invoiceNumber": e.InvoiceNumber,
		"date":          entity.FormatDate(e.Date),
		"name":          e.Name,
		"amount":        e.Amount.String(),
	})
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	e.ID = id
	return nil
}
