package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// RawMaterialPatch enumera los campos actualizables de RawMaterial.
type RawMaterialPatch struct {
	Name      *string
	Stock     *decimal.Decimal
	Threshold *decimal.Decimal
	Price     *decimal.Decimal
}

// RawMaterialRepository define el puerto de persistencia para RawMaterial.
type RawMaterialRepository interface {
	List(ctx context.Context) ([]*entity.RawMaterial, error)
	GetByID(ctx context.Context, id string) (*entity.RawMaterial, error)
	Create(ctx context.Context, m *entity.RawMaterial) error
	Update(ctx context.Context, id string, patch RawMaterialPatch) error
	Delete(ctx context.Context, id string) error
}
