package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialUsage consumo de una materia prima dentro de una orden de producción.
type MaterialUsage struct {
	MaterialID   string
	MaterialName string
	Quantity     decimal.Decimal
}

// ManufacturingRecord orden de producción registrada: produce Quantity unidades
// del producto y consume las materias primas listadas. Solo-inserción.
type ManufacturingRecord struct {
	ID            string
	ProductID     string
	ProductName   string
	Quantity      decimal.Decimal
	Date          time.Time
	MaterialsUsed []MaterialUsage
}
