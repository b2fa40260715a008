package docrepo

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo adaptador de persistencia para RawMaterial.
type RawMaterialRepo struct {
	store docstore.Store
}

// NewRawMaterialRepository construye el adaptador.
func NewRawMaterialRepository(store docstore.Store) *RawMaterialRepo {
	return &RawMaterialRepo{store: store}
}

// List devuelve todas las materias primas.
func (r *RawMaterialRepo) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	docs, err := r.store.List(ctx, docstore.ColRawMaterials)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	materials := make([]*entity.RawMaterial, 0, len(docs))
	for _, doc := range docs {
		m, err := materialFromDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("raw material %s: %w", doc.ID, err)
		}
		materials = append(materials, m)
	}
	return materials, nil
}

// GetByID obtiene una materia prima por id.
func (r *RawMaterialRepo) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	doc, err := r.store.Get(ctx, docstore.ColRawMaterials, id)
	if err != nil {
		return nil, err
	}
	return materialFromDoc(*doc)
}

// Create persiste la materia prima y asigna el id generado.
func (r *RawMaterialRepo) Create(ctx context.Context, m *entity.RawMaterial) error {
	id, err := r.store.Create(ctx, docstore.ColRawMaterials, map[string]any{
		"name":      m.Name,
		"stock":     m.Stock.String(),
		"threshold": m.Threshold.String(),
		"price":     m.Price.String(),
	})
	if err != nil {
		return fmt.Errorf("insert raw material: %w", err)
	}
	m.ID = id
	return nil
}

// Update aplica el patch de campos no-nil.
func (r *RawMaterialRepo) Update(ctx context.Context, id string, patch repository.RawMaterialPatch) error {
	fields := make(map[string]any)
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Stock != nil {
		fields["stock"] = patch.Stock.String()
	}
	if patch.Threshold != nil {
		fields["threshold"] = patch.Threshold.String()
	}
	if patch.Price != nil {
		fields["price"] = patch.Price.String()
	}
	if len(fields) == 0 {
		return nil
	}
	return r.store.Update(ctx, docstore.ColRawMaterials, id, fields)
}

// Delete elimina una materia prima por id.
func (r *RawMaterialRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.ColRawMaterials, id)
}

func materialFromDoc(doc docstore.Document) (*entity.RawMaterial, error) {
	stock, err := decField(doc.Fields, "stock")
	if err != nil {
		return nil, err
	}
	threshold, err := decField(doc.Fields, "threshold")
	if err != nil {
		return nil, err
	}
	price, err := decField(doc.Fields, "price")
	if err != nil {
		return nil, err
	}
	return &entity.RawMaterial{
		ID:        doc.ID,
		Name:      strField(doc.Fields, "name"),
		Stock:     stock,
		Threshold: threshold,
		Price:     price,
	}, nil
}
