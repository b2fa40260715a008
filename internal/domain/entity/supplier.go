package entity

// Supplier proveedor de materias primas. Inmutable una vez creado.
type Supplier struct {
	ID      string
	Name    string
	Phone   string
	Address string
}
