package dto

import "github.com/shopspring/decimal"

// DailyBookRequest parámetros para generar el libro diario.
type DailyBookRequest struct {
	StartDate      string          `json:"start_date" query:"start_date"` // YYYY-MM-DD
	EndDate        string          `json:"end_date" query:"end_date"`     // YYYY-MM-DD
	OpeningBalance decimal.Decimal `json:"opening_balance" query:"opening_balance"`
}

// LedgerEntryResponse un renglón del libro diario.
type LedgerEntryResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"` // OPENING, SALE, EXPENSE, PURCHASE
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Balance     decimal.Decimal `json:"balance"`
	Reference   string          `json:"reference,omitempty"`
}

// DailyBookResponse libro diario completo del rango pedido.
type DailyBookResponse struct {
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	OpeningBalance decimal.Decimal       `json:"opening_balance"`
	Entries        []LedgerEntryResponse `json:"entries"`
}
