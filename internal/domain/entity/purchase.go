package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem línea de compra de materia prima. Total = Quantity × Price.
type PurchaseItem struct {
	MaterialID   string
	MaterialName string
	Quantity     decimal.Decimal
	Price        decimal.Decimal
	Total        decimal.Decimal
}

// Purchase compra a proveedor. Solo-inserción. InvoiceNumber es texto libre del
// proveedor ("-" si no hay); no se valida unicidad. Subtotal = Σ Items.Total.
type Purchase struct {
	ID            string
	InvoiceNumber string
	SupplierID    string
	SupplierName  string
	Items         []PurchaseItem
	Subtotal      decimal.Decimal
	Date          time.Time
}
