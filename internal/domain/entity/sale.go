package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de venta. Total = Quantity × Price.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// Sale venta registrada. Solo-inserción: el número de factura se asigna en la
// creación y nunca se reutiliza ni se edita. Subtotal = Σ Items.Total y
// Total = Subtotal − Discount.
type Sale struct {
	ID            string
	InvoiceNumber string
	CustomerID    string
	CustomerName  string
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Date          time.Time
	VehicleNumber string // opcional
}
