package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Date          string          `json:"date"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
}
