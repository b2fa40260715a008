package dto

import "github.com/shopspring/decimal"

// CreatePurchaseRequest body para POST /api/purchases. InvoiceNumber es el
// número de factura del proveedor, texto libre; vacío se registra como "-".
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplier_id"`
	InvoiceNumber string                `json:"invoice_number,omitempty"`
	Items         []PurchaseItemRequest `json:"items"`
	Date          string                `json:"date"` // YYYY-MM-DD
}

// PurchaseItemRequest línea de compra (materia prima, cantidad y precio unitario).
type PurchaseItemRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// PurchaseResponse compra con detalle.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	InvoiceNumber string                 `json:"invoice_number"`
	SupplierID    string                 `json:"supplier_id"`
	SupplierName  string                 `json:"supplier_name"`
	Items         []PurchaseItemResponse `json:"items"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Date          string                 `json:"date"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
}
