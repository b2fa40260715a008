package entity

// Customer cliente de ventas. Inmutable una vez creado (sin operación de edición);
// se da de alta sobre la marcha durante el registro de una venta.
type Customer struct {
	ID      string
	Name    string
	Phone   string // opcional
	Address string
}
