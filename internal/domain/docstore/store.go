package docstore

import "context"

// Colecciones del almacén de documentos.
const (
	ColProducts      = "products"
	ColCustomers     = "customers"
	ColSuppliers     = "suppliers"
	ColRawMaterials  = "raw_materials"
	ColManufacturing = "manufacturing"
	ColSales         = "sales"
	ColPurchases     = "purchases"
	ColExpenses      = "expenses"
	ColSystemConfig  = "system_config"
)

// DocInvoiceCounter id fijo del documento singleton con el consecutivo de facturas.
const DocInvoiceCounter = "invoice"

// Document un documento del almacén: id generado + campos planos.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store define el puerto del almacén de documentos (CRUD por colección).
// Get/Update/Delete sobre un documento inexistente devuelven domain.ErrNotFound.
type Store interface {
	// List devuelve todos los documentos de la colección.
	List(ctx context.Context, collection string) ([]Document, error)
	// Get obtiene un documento por id.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Create inserta un documento y devuelve el id generado.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Update aplica una actualización parcial de campos.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete elimina un documento por id.
	Delete(ctx context.Context, collection, id string) error
	// Increment suma delta a un campo numérico de forma atómica en el servidor
	// y devuelve el valor resultante. Si el documento no existe lo crea (upsert),
	// partiendo de cero.
	Increment(ctx context.Context, collection, id, field string, delta int64) (int64, error)
}
