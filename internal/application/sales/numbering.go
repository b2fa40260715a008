package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/domain/docstore"
)

// invoiceNumberField campo del documento singleton system_config/invoice.
const invoiceNumberField = "lastInvoiceNumber"

// InvoiceNumbering emite números de factura estrictamente crecientes, con
// formato decimal de 5 dígitos rellenado con ceros ("00001", "00002", ...),
// respaldados por el documento contador singleton.
//
// El incremento es atómico en el servidor del almacén ($inc con upsert): dos
// llamadores concurrentes no pueden obtener el mismo número.
type InvoiceNumbering struct {
	store docstore.Store
}

// NewInvoiceNumbering construye el servicio.
func NewInvoiceNumbering(store docstore.Store) *InvoiceNumbering {
	return &InvoiceNumbering{store: store}
}

// Ensure inicializa el contador en cero si el documento no existe todavía
// (transición Uninitialized → Active). Un incremento con delta 0 hace upsert
// sin mover un contador ya activo.
func (s *InvoiceNumbering) Ensure(ctx context.Context) error {
	_, err := s.store.Increment(ctx, docstore.ColSystemConfig, docstore.DocInvoiceCounter, invoiceNumberField, 0)
	if err != nil {
		return fmt.Errorf("inicializar contador de facturas: %w", err)
	}
	return nil
}

// Next emite el siguiente número de factura ya formateado.
func (s *InvoiceNumbering) Next(ctx context.Context) (string, error) {
	n, err := s.store.Increment(ctx, docstore.ColSystemConfig, docstore.DocInvoiceCounter, invoiceNumberField, 1)
	if err != nil {
		return "", fmt.Errorf("siguiente número de factura: %w", err)
	}
	return FormatInvoiceNumber(n), nil
}

// Current devuelve el último consecutivo emitido sin consumir uno nuevo.
func (s *InvoiceNumbering) Current(ctx context.Context) (int64, error) {
	n, err := s.store.Increment(ctx, docstore.ColSystemConfig, docstore.DocInvoiceCounter, invoiceNumberField, 0)
	if err != nil {
		return 0, fmt.Errorf("leer contador de facturas: %w", err)
	}
	return n, nil
}

// FormatInvoiceNumber formatea un consecutivo como decimal de 5 dígitos.
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("%05d", n)
}
