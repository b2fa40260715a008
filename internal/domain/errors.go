package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrPartialStockApply: la transacción ya quedó registrada pero uno o más
	// ajustes de stock no se aplicaron. No hay rollback del registro.
	ErrPartialStockApply = errors.New("aplicación parcial de stock")
)
