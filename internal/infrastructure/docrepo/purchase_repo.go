package docrepo

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo adaptador de persistencia para Purchase (solo-inserción).
type PurchaseRepo struct {
	store docstore.Store
}

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(store docstore.Store) *PurchaseRepo {
	return &PurchaseRepo{store: store}
}

// List devuelve todas las compras.
func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	docs, err := r.store.List(ctx, docstore.ColPurchases)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	purchases := make([]*entity.Purchase, 0, len(docs))
	for _, doc := range docs {
		p, err := purchaseFromDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("purchase %s: %w", doc.ID, err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// Create persiste la compra y asigna el id generado.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	items := make([]map[string]any, len(p.Items))
	for i, item := range p.Items {
		items[i] = map[string]any{
			"materialId":   item.MaterialID,
			"materialName": item.MaterialName,
			"quantity":     item.Quantity.String(),
			"price":        item.Price.String(),
			"total":        item.Total.String(),
		}
	}
	id, err := r.store.Create(ctx, docstore.ColPurchases, map[string]any{
		"invoiceNumber": p.InvoiceNumber,
		"supplierId":    p.SupplierID,
		"supplierName":  p.SupplierName,
		"items":         items,
		"subtotal":      p.Subtotal.String(),
		"date":          entity.FormatDate(p.Date),
	})
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	p.ID = id
	return nil
}

func purchaseFromDoc(doc docstore.Document) (*entity.Purchase, error) {
	subtotal, err := decField(doc.Fields, "subtotal")
	if err != nil {
		return nil, err
	}
	date, err := dateField(doc.Fields, "date")
	if err != nil {
		return nil, err
	}

	rawItems := itemsField(doc.Fields, "items")
	items := make([]entity.PurchaseItem, 0, len(rawItems))
	for _, raw := range rawItems {
		qty, err := decField(raw, "quantity")
		if err != nil {
			return nil, err
		}
		price, err := decField(raw, "price")
		if err != nil {
			return nil, err
		}
		itemTotal, err := decField(raw, "total")
		if err != nil {
			return nil, err
		}
		items = append(items, entity.PurchaseItem{
			MaterialID:   strField(raw, "materialId"),
			MaterialName: strField(raw, "materialName"),
			Quantity:     qty,
			Price:        price,
			Total:        itemTotal,
		})
	}

	return &entity.Purchase{
		ID:            doc.ID,
		InvoiceNumber: strField(doc.Fields, "invoiceNumber"),
		SupplierID:    strField(doc.Fields, "supplierId"),
		SupplierName:  strField(doc.Fields, "supplierName"),
		Items:         items,
		Subtotal:      subtotal,
		Date:          date,
	}, nil
}
