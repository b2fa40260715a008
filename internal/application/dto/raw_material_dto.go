package dto

import "github.com/shopspring/decimal"

// CreateRawMaterialRequest body para POST /api/raw-materials.
type CreateRawMaterialRequest struct {
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	Threshold decimal.Decimal `json:"threshold"`
	Price     decimal.Decimal `json:"price"`
}

// UpdateRawMaterialRequest body para PUT /api/raw-materials/:id (campos opcionales).
type UpdateRawMaterialRequest struct {
	Name      *string          `json:"name,omitempty"`
	Stock     *decimal.Decimal `json:"stock,omitempty"`
	Threshold *decimal.Decimal `json:"threshold,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// RawMaterialResponse materia prima en respuestas.
type RawMaterialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	Threshold decimal.Decimal `json:"threshold"`
	Price     decimal.Decimal `json:"price"`
}
