// Package usecase contiene los casos de uso CRUD de catálogo: productos,
// materias primas, clientes, proveedores y gastos. Los motores transaccionales
// (ventas, compras, producción) viven en sus propios paquetes.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/stock"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

// inventoryPriceFactor factor fijo sobre el precio de venta.
var inventoryPriceFactor = decimal.RequireFromString("0.8")

// inventoryPrice deriva el precio de inventario del precio de venta,
// redondeado a 2 decimales. Nunca se acepta desde el cliente.
func inventoryPrice(salesPrice decimal.Decimal) decimal.Decimal {
	return salesPrice.Mul(inventoryPriceFactor).Round(2)
}

// ProductUseCase CRUD de productos terminados. Mantiene sincronizado el espejo
// de existencias en altas, ediciones directas de stock y bajas.
type ProductUseCase struct {
	repo  repository.ProductRepository
	stock *stock.Ledger
	log   *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockLedger *stock.Ledger, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, stock: stockLedger, log: log}
}

// Create da de alta un producto. El precio de inventario se deriva aquí.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("nombre de producto vacío: %w", domain.ErrInvalidInput)
	}
	if in.SalesPrice.IsNegative() || in.StockQuantity.IsNegative() || in.DisplayQuantity.IsNegative() {
		return nil, fmt.Errorf("producto %q con valores negativos: %w", in.Name, domain.ErrInvalidInput)
	}

	product := &entity.Product{
		Name:            in.Name,
		SalesPrice:      in.SalesPrice,
		InventoryPrice:  inventoryPrice(in.SalesPrice),
		StockQuantity:   in.StockQuantity,
		DisplayQuantity: in.DisplayQuantity,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.stock.TrackProduct(product.ID, product.StockQuantity)

	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return toProductResponse(product), nil
}

// Update edita un producto. Si cambia el precio de venta, el precio de
// inventario se recalcula; una edición directa de stock re-sincroniza el espejo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("nombre de producto vacío: %w", domain.ErrInvalidInput)
	}
	if in.SalesPrice != nil && in.SalesPrice.IsNegative() {
		return nil, fmt.Errorf("precio de venta negativo: %w", domain.ErrInvalidInput)
	}
	if in.StockQuantity != nil && in.StockQuantity.IsNegative() {
		return nil, fmt.Errorf("stock negativo: %w", domain.ErrInvalidInput)
	}

	patch := repository.ProductPatch{
		Name:            in.Name,
		SalesPrice:      in.SalesPrice,
		StockQuantity:   in.StockQuantity,
		DisplayQuantity: in.DisplayQuantity,
	}
	if in.SalesPrice != nil {
		derived := inventoryPrice(*in.SalesPrice)
		patch.InventoryPrice = &derived
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	if in.StockQuantity != nil {
		uc.stock.TrackProduct(id, *in.StockQuantity)
	}

	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo de productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto y lo saca del espejo. El borrado es duro: las
// ventas históricas conservan nombre y precio denormalizados.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.stock.ForgetProduct(id)
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SalesPrice:      p.SalesPrice,
		InventoryPrice:  p.InventoryPrice,
		StockQuantity:   p.StockQuantity,
		DisplayQuantity: p.DisplayQuantity,
	}
}
