// Package purchasing implementa el motor de compras: persiste la compra, suma
// el stock de cada materia prima y sobreescribe su precio con el último precio
// de compra cuando cambia.
package purchasing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/stock"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

// RegisterPurchaseUseCase registra una compra. Las compras solo agregan stock,
// así que no hay verificación de suficiencia; el número de factura del
// proveedor es texto libre y no se valida su unicidad.
type RegisterPurchaseUseCase struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	materialRepo repository.RawMaterialRepository
	stock        *stock.Ledger
	log          *logger.Logger
}

// NewRegisterPurchaseUseCase construye el caso de uso.
func NewRegisterPurchaseUseCase(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	materialRepo repository.RawMaterialRepository,
	stockLedger *stock.Ledger,
	log *logger.Logger,
) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		stock:        stockLedger,
		log:          log,
	}
}

// Register registra la compra y devuelve el registro persistido.
func (uc *RegisterPurchaseUseCase) Register(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" {
		return nil, fmt.Errorf("proveedor no seleccionado: %w", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("la compra no tiene líneas: %w", domain.ErrInvalidInput)
	}
	date, err := entity.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha %q: %w", in.Date, domain.ErrInvalidInput)
	}

	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("proveedor %s: %w", in.SupplierID, err)
	}

	materials := make([]*entity.RawMaterial, len(in.Items))
	for i, item := range in.Items {
		if item.MaterialID == "" || !item.Quantity.IsPositive() || item.Price.IsNegative() {
			return nil, fmt.Errorf("línea %d inválida: %w", i+1, domain.ErrInvalidInput)
		}
		material, err := uc.materialRepo.GetByID(ctx, item.MaterialID)
		if err != nil {
			return nil, fmt.Errorf("materia prima %s: %w", item.MaterialID, err)
		}
		materials[i] = material
	}

	invoiceNumber := in.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = "-"
	}

	items := make([]entity.PurchaseItem, len(in.Items))
	subtotal := decimal.Zero
	for i, item := range in.Items {
		lineTotal := item.Quantity.Mul(item.Price)
		items[i] = entity.PurchaseItem{
			MaterialID:   materials[i].ID,
			MaterialName: materials[i].Name,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Total:        lineTotal,
		}
		subtotal = subtotal.Add(lineTotal)
	}

	purchase := &entity.Purchase{
		InvoiceNumber: invoiceNumber,
		SupplierID:    supplier.ID,
		SupplierName:  supplier.Name,
		Items:         items,
		Subtotal:      subtotal,
		Date:          date,
	}
	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	// Aplicación: sumar stock por línea y actualizar el precio si cambió
	// (gana el último precio de compra; no se conserva historial de precios).
	for i, item := range purchase.Items {
		if err := uc.stock.ApplyMaterialDelta(ctx, item.MaterialID, item.Quantity); err != nil {
			uc.log.Error().Err(err).
				Str("purchase_id", purchase.ID).
				Str("material_id", item.MaterialID).
				Msg("compra registrada con aplicación parcial de stock")
			return nil, fmt.Errorf("compra %s registrada, stock aplicado parcialmente: %w",
				purchase.ID, domain.ErrPartialStockApply)
		}
		if !materials[i].Price.Equal(item.Price) {
			price := item.Price
			if err := uc.materialRepo.Update(ctx, item.MaterialID, repository.RawMaterialPatch{Price: &price}); err != nil {
				return nil, fmt.Errorf("actualizar precio de %s: %w", item.MaterialName, err)
			}
		}
	}

	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("supplier", purchase.SupplierName).
		Str("subtotal", purchase.Subtotal.String()).
		Msg("compra registrada")

	return toPurchaseResponse(purchase), nil
}

// List devuelve el historial de compras.
func (uc *RegisterPurchaseUseCase) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			MaterialID:   item.MaterialID,
			MaterialName: item.MaterialName,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Total:        item.Total,
		})
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		InvoiceNumber: p.InvoiceNumber,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		Items:         items,
		Subtotal:      p.Subtotal,
		Date:          entity.FormatDate(p.Date),
	}
}
