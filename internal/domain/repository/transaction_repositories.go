package repository

import (
	"context"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// Los registros transaccionales son solo-inserción: no exponen Update ni Delete.

// SaleRepository puerto de persistencia para Sale.
type SaleRepository interface {
	List(ctx context.Context) ([]*entity.Sale, error)
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Create(ctx context.Context, s *entity.Sale) error
}

// PurchaseRepository puerto de persistencia para Purchase.
type PurchaseRepository interface {
	List(ctx context.Context) ([]*entity.Purchase, error)
	Create(ctx context.Context, p *entity.Purchase) error
}

// ManufacturingRepository puerto de persistencia para ManufacturingRecord.
type ManufacturingRepository interface {
	List(ctx context.Context) ([]*entity.ManufacturingRecord, error)
	Create(ctx context.Context, r *entity.ManufacturingRecord) error
}

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	List(ctx context.Context) ([]*entity.Expense, error)
	Create(ctx context.Context, e *entity.Expense) error
}
