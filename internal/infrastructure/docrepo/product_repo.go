package docrepo

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de persistencia para Product sobre el almacén de documentos.
type ProductRepo struct {
	store docstore.Store
}

// NewProductRepository construye el adaptador.
func NewProductRepository(store docstore.Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	docs, err := r.store.List(ctx, docstore.ColProducts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := productFromDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", doc.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// GetByID obtiene un producto por id.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.store.Get(ctx, docstore.ColProducts, id)
	if err != nil {
		return nil, err
	}
	return productFromDoc(*doc)
}

// Create persiste el producto y asigna el id generado.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	id, err := r.store.Create(ctx, docstore.ColProducts, map[string]any{
		"name":            p.Name,
		"salesPrice":      p.SalesPrice.String(),
		"inventoryPrice":  p.InventoryPrice.String(),
		"stockQuantity":   p.StockQuantity.String(),
		"displayQuantity": p.DisplayQuantity.String(),
	})
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	p.ID = id
	return nil
}

// Update aplica el patch de campos no-nil.
func (r *ProductRepo) Update(ctx context.Context, id string, patch repository.ProductPatch) error {
	fields := make(map[string]any)
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.SalesPrice != nil {
		fields["salesPrice"] = patch.SalesPrice.String()
	}
	if patch.InventoryPrice != nil {
		fields["inventoryPrice"] = patch.InventoryPrice.String()
	}
	if patch.StockQuantity != nil {
		fields["stockQuantity"] = patch.StockQuantity.String()
	}
	if patch.DisplayQuantity != nil {
		fields["displayQuantity"] = patch.DisplayQuantity.String()
	}
	if len(fields) == 0 {
		return nil
	}
	return r.store.Update(ctx, docstore.ColProducts, id, fields)
}

// Delete elimina un producto por id.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.ColProducts, id)
}

func productFromDoc(doc docstore.Document) (*entity.Product, error) {
	salesPrice, err := decField(doc.Fields, "salesPrice")
	if err != nil {
		return nil, err
	}
	inventoryPrice, err := decField(doc.Fields, "inventoryPrice")
	if err != nil {
		return nil, err
	}
	stockQuantity, err := decField(doc.Fields, "stockQuantity")
	if err != nil {
		return nil, err
	}
	displayQuantity, err := decField(doc.Fields, "displayQuantity")
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:              doc.ID,
		Name:            strField(doc.Fields, "name"),
		SalesPrice:      salesPrice,
		InventoryPrice:  inventoryPrice,
		StockQuantity:   stockQuantity,
		DisplayQuantity: displayQuantity,
	}, nil
}
