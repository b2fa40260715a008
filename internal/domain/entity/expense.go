package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto suelto (no ligado a inventario). Solo-inserción.
type Expense struct {
	ID            string
	InvoiceNumber string // opcional
	Date          time.Time
	Name          string
	Amount        decimal.Decimal
}
