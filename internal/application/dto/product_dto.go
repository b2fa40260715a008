package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
// El precio de inventario no se captura: siempre se deriva del precio de venta.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SalesPrice      decimal.Decimal `json:"sales_price"`
	StockQuantity   decimal.Decimal `json:"stock_quantity"`
	DisplayQuantity decimal.Decimal `json:"display_quantity"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name            *string          `json:"name,omitempty"`
	SalesPrice      *decimal.Decimal `json:"sales_price,omitempty"`
	StockQuantity   *decimal.Decimal `json:"stock_quantity,omitempty"`
	DisplayQuantity *decimal.Decimal `json:"display_quantity,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SalesPrice      decimal.Decimal `json:"sales_price"`
	InventoryPrice  decimal.Decimal `json:"inventory_price"`
	StockQuantity   decimal.Decimal `json:"stock_quantity"`
	DisplayQuantity decimal.Decimal `json:"display_quantity"`
}
