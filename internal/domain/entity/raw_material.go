package entity

import "github.com/shopspring/decimal"

// RawMaterial materia prima consumida por producción.
// Stock tiene invariante ≥ 0; Threshold es solo un punto de reorden informativo.
// Price guarda el último precio de compra (se sobreescribe en cada compra).
type RawMaterial struct {
	ID        string
	Name      string
	Stock     decimal.Decimal
	Threshold decimal.Decimal
	Price     decimal.Decimal
}
