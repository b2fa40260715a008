package docrepo

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

var _ repository.ManufacturingRepository = (*ManufacturingRepo)(nil)

// ManufacturingRepo adaptador de persistencia para ManufacturingRecord (solo-inserción).
type ManufacturingRepo struct {
	store docstore.Store
}

// NewManufacturingRepository construye el adaptador.
func NewManufacturingRepository(store docstore.Store) *ManufacturingRepo {
	return &ManufacturingRepo{store: store}
}

// List devuelve todas las órdenes de producción.
func (r *ManufacturingRepo) List(ctx context.Context) ([]*entity.ManufacturingRecord, error) {
	docs, err := r.store.List(ctx, docstore.ColManufacturing)
	if err != nil {
		return nil, fmt.Errorf("list manufacturing: %w", err)
	}
	records := make([]*entity.ManufacturingRecord, 0, len(docs))
	for _, doc := range docs {
		rec, err := manufacturingFromDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("manufacturing %s: %w", doc.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Create persiste la orden de producción y asigna el id generado.
func (r *ManufacturingRepo) Create(ctx context.Context, rec *entity.ManufacturingRecord) error {
	used := make([]map[string]any, len(rec.MaterialsUsed))
	for i, mu := range rec.MaterialsUsed {
		used[i] = map[string]any{
			"materialId":   mu.MaterialID,
			"materialName": mu.MaterialName,
			"quantity":     mu.Quantity.String(),
		}
	}
	id, err := r.store.Create(ctx, docstore.ColManufacturing, map[string]any{
		"productId":     rec.ProductID,
		"productName":   rec.ProductName,
		"quantity":      rec.Quantity.String(),
		"date":          entity.FormatDate(rec.Date),
		"materialsUsed": used,
	})
	if err != nil {
		return fmt.Errorf("insert manufacturing: %w", err)
	}
	rec.ID = id
	return nil
}

func manufacturingFromDoc(doc docstore.Document) (*entity.ManufacturingRecord, error) {
	qty, err := decField(doc.Fields, "quantity")
	if err != nil {
		return nil, err
	}
	date, err := dateField(doc.Fields, "date")
	if err != nil {
		return nil, err
	}

	rawUsed := itemsField(doc.Fields, "materialsUsed")
	used := make([]entity.MaterialUsage, 0, len(rawUsed))
	for _, raw := range rawUsed {
		usageQty, err := decField(raw, "quantity")
		if err != nil {
			return nil, err
		}
		used = append(used, entity.MaterialUsage{
			MaterialID:   strField(raw, "materialId"),
			MaterialName: strField(raw, "materialName"),
			Quantity:     usageQty,
		})
	}

	return &entity.ManufacturingRecord{
		ID:            doc.ID,
		ProductID:     strField(doc.Fields, "productId"),
		ProductName:   strField(doc.Fields, "productName"),
		Quantity:      qty,
		Date:          date,
		MaterialsUsed: used,
	}, nil
}
