package entity

import "github.com/shopspring/decimal"

// Product representa un producto terminado del inventario.
// InventoryPrice es derivado (SalesPrice × 0.8) y se recalcula en cada alta o
// edición; StockQuantity solo cambia vía ventas y producción, con invariante ≥ 0.
// DisplayQuantity es informativo (exhibición en mostrador), sin invariante.
type Product struct {
	ID              string
	Name            string
	SalesPrice      decimal.Decimal
	InventoryPrice  decimal.Decimal
	StockQuantity   decimal.Decimal
	DisplayQuantity decimal.Decimal
}
