package docrepo

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
)

// CustomerRepo adaptador de persistencia para Customer.
type CustomerRepo struct {
	store docstore.Store
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(store docstore.Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

// List devuelve todos los clientes.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	docs, err := r.store.List(ctx, docstore.ColCustomers)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers := make([]*entity.Customer, 0, len(docs))
	for _, doc := range docs {
		customers = append(customers, &entity.Customer{
			ID:      doc.ID,
			Name:    strField(doc.Fields, "name"),
			Phone:   strField(doc.Fields, "phone"),
			Address: strField(doc.Fields, "address"),
		})
	}
	return customers, nil
}

// GetByID obtiene un cliente por id.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	doc, err := r.store.Get(ctx, docstore.ColCustomers, id)
	if err != nil {
		return nil, err
	}
	return &entity.Customer{
		ID:      doc.ID,
		Name:    strField(doc.Fields, "name"),
		Phone:   strField(doc.Fields, "phone"),
		Address: strField(doc.Fields, "address"),
	}, nil
}

// Create persiste el cliente y asigna el id generado.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	id, err := r.store.Create(ctx, docstore.ColCustomers, map[string]any{
		"name":    c.Name,
		"phone":   c.Phone,
		"address": c.Address,
	})
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	c.ID = id
	return nil
}

// SupplierRepo adaptador de persistencia para Supplier.
type SupplierRepo struct {
	store docstore.Store
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(store docstore.Store) *SupplierRepo {
	return &SupplierRepo{store: store}
}

// List devuelve todos los proveedores.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	docs, err := r.store.List(ctx, docstore.ColSuppliers)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	suppliers := make([]*entity.Supplier, 0, len(docs))
	for _, doc := range docs {
		suppliers = append(suppliers, &entity.Supplier{
			ID:      doc.ID,
			Name:    strField(doc.Fields, "name"),
			Phone:   strField(doc.Fields, "phone"),
			Address: strField(doc.Fields, "address"),
		})
	}
	return suppliers, nil
}

// GetByID obtiene un proveedor por id.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	doc, err := r.store.Get(ctx, docstore.ColSuppliers, id)
	if err != nil {
		return nil, err
	}
	return &entity.Supplier{
		ID:      doc.ID,
		Name:    strField(doc.Fields, "name"),
		Phone:   strField(doc.Fields, "phone"),
		Address: strField(doc.Fields, "address"),
	}, nil
}

// Create persiste el proveedor y asigna el id generado.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	id, err := r.store.Create(ctx, docstore.ColSuppliers, map[string]any{
		"name":    s.Name,
		"phone":   s.Phone,
		"address": s.Address,
	})
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	s.ID = id
	return nil
}
