package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest body para POST /api/sales. El precio de cada línea sale del
// producto; el cliente no lo envía.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	Items         []SaleItemRequest `json:"items"`
	Discount      decimal.Decimal   `json:"discount"`
	Date          string            `json:"date"` // YYYY-MM-DD
	VehicleNumber string            `json:"vehicle_number,omitempty"`
}

// SaleItemRequest línea de venta (producto y cantidad).
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SaleResponse venta con detalle; incluye el número de factura asignado para
// que el llamador navegue a la vista de factura.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	Date          string             `json:"date"`
	VehicleNumber string             `json:"vehicle_number,omitempty"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}
