package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// ProductPatch enumera los campos actualizables de Product. Solo los punteros
// no-nil se escriben; InventoryPrice siempre lo fija el caso de uso a partir
// de SalesPrice, nunca el cliente.
type ProductPatch struct {
	Name            *string
	SalesPrice      *decimal.Decimal
	InventoryPrice  *decimal.Decimal
	StockQuantity   *decimal.Decimal
	DisplayQuantity *decimal.Decimal
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Create persiste el producto y asigna p.ID con el id generado por el almacén.
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) error
}
