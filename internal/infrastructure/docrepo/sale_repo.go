package docrepo

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adaptador de persistencia para Sale (solo-inserción).
type SaleRepo struct {
	store docstore.Store
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(store docstore.Store) *SaleRepo {
	return &SaleRepo{store: store}
}

// List devuelve todas las ventas.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	docs, err := r.store.List(ctx, docstore.ColSales)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	sales := make([]*entity.Sale, 0, len(docs))
	for _, doc := range docs {
		s, err := saleFromDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("sale %s: %w", doc.ID, err)
		}
		sales = append(sales, s)
	}
	return sales, nil
}

// GetByID obtiene una venta por id (vista de factura).
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	doc, err := r.store.Get(ctx, docstore.ColSales, id)
	if err != nil {
		return nil, err
	}
	return saleFromDoc(*doc)
}

// Create persiste la venta y asigna el id generado.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items := make([]map[string]any, len(s.Items))
	for i, item := range s.Items {
		items[i] = map[string]any{
			"productId":   item.ProductID,
			"productName": item.ProductName,
			"quantity":    item.Quantity.String(),
			"price":       item.Price.String(),
			"total":       item.Total.String(),
		}
	}
	id, err := r.store.Create(ctx, docstore.ColSales, map[string]any{
		"invoiceNumber": s.InvoiceNumber,
		"customerId":    s.CustomerID,
		"customerName":  s.CustomerName,
		"items":         items,
		"subtotal":      s.Subtotal.String(),
		"discount":      s.Discount.String(),
		"total":         s.Total.String(),
		"date":          entity.FormatDate(s.Date),
		"vehicleNumber": s.VehicleNumber,
	})
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	s.ID = id
	return nil
}

func saleFromDoc(doc docstore.Document) (*entity.Sale, error) {
	subtotal, err := decField(doc.Fields, "subtotal")
	if err != nil {
		return nil, err
	}
	discount, err := decField(doc.Fields, "discount")
	if err != nil {
		return nil, err
	}
	total, err := decField(doc.Fields, "total")
	if err != nil {
		return nil, err
	}
	date, err := dateField(doc.Fields, "date")
	if err != nil {
		return nil, err
	}

	rawItems := itemsField(doc.Fields, "items")
	items := make([]entity.SaleItem, 0, len(rawItems))
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
		items = append(items, entity.SaleItem{
			ProductID:   strField(raw, "productId"),
			ProductName: strField(raw, "productName"),
			Quantity:    qty,
			Price:       price,
			Total:       itemTotal,
		})
	}

	return &entity.Sale{
		ID:            doc.ID,
		InvoiceNumber: strField(doc.Fields, "invoiceNumber"),
		CustomerID:    strField(doc.Fields, "customerId"),
		CustomerName:  strField(doc.Fields, "customerName"),
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		Date:          date,
		VehicleNumber: strField(doc.Fields, "vehicleNumber"),
	}, nil
}
