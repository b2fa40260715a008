package entity

// SystemConfig documento singleton con el último consecutivo de factura emitido.
// Es la única entidad con id fijo conocido ("invoice" en system_config).
type SystemConfig struct {
	ID                string
	LastInvoiceNumber int64
}
