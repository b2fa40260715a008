package repository

import (
	"context"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para Customer.
// Sin Update: los clientes son inmutables una vez creados.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) error
}

// SupplierRepository puerto de persistencia para Supplier. También inmutable.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) error
}
