package dto

import "github.com/shopspring/decimal"

// CreateManufacturingRequest body para POST /api/manufacturing.
type CreateManufacturingRequest struct {
	ProductID string                 `json:"product_id"`
	Quantity  decimal.Decimal        `json:"quantity"`
	Date      string                 `json:"date"` // YYYY-MM-DD
	Materials []MaterialUsageRequest `json:"materials"`
}

// MaterialUsageRequest consumo de materia prima en la orden.
type MaterialUsageRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ManufacturingResponse orden de producción en respuestas.
type ManufacturingResponse struct {
	ID            string                  `json:"id"`
	ProductID     string                  `json:"product_id"`
	ProductName   string                  `json:"product_name"`
	Quantity      decimal.Decimal         `json:"quantity"`
	Date          string                  `json:"date"`
	MaterialsUsed []MaterialUsageResponse `json:"materials_used"`
}

// MaterialUsageResponse consumo de materia prima en respuestas.
type MaterialUsageResponse struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
}
