// Package manufacturing implementa el motor de producción: valida el consumo de
// materias primas todo-o-nada, persiste la orden, suma el producto terminado y
// descuenta las materias consumidas.
package manufacturing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/stock"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

// RegisterProductionUseCase registra una orden de producción siguiendo el
// protocolo validar → persistir → aplicar. Sin sustitución de materiales ni
// consumo parcial: si una sola materia prima no alcanza, no se escribe nada.
type RegisterProductionUseCase struct {
	manufacturingRepo repository.ManufacturingRepository
	productRepo       repository.ProductRepository
	materialRepo      repository.RawMaterialRepository
	stock             *stock.Ledger
	log               *logger.Logger
}

// NewRegisterProductionUseCase construye el caso de uso.
func NewRegisterProductionUseCase(
	manufacturingRepo repository.ManufacturingRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.RawMaterialRepository,
	stockLedger *stock.Ledger,
	log *logger.Logger,
) *RegisterProductionUseCase {
	return &RegisterProductionUseCase{
		manufacturingRepo: manufacturingRepo,
		productRepo:       productRepo,
		materialRepo:      materialRepo,
		stock:             stockLedger,
		log:               log,
	}
}

// Register registra la orden de producción y devuelve el registro persistido.
func (uc *RegisterProductionUseCase) Register(ctx context.Context, in dto.CreateManufacturingRequest) (*dto.ManufacturingResponse, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("producto no seleccionado: %w", domain.ErrInvalidInput)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("cantidad producida inválida: %w", domain.ErrInvalidInput)
	}
	if len(in.Materials) == 0 {
		return nil, fmt.Errorf("la orden no consume materias primas: %w", domain.ErrInvalidInput)
	}
	date, err := entity.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha %q: %w", in.Date, domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", in.ProductID, err)
	}

	// Validación todo-o-nada del consumo, contra el estado pre-transacción.
	materials := make([]*entity.RawMaterial, len(in.Materials))
	for i, usage := range in.Materials {
		if usage.MaterialID == "" || !usage.Quantity.IsPositive() {
			return nil, fmt.Errorf("consumo %d inválido: %w", i+1, domain.ErrInvalidInput)
		}
		material, err := uc.materialRepo.GetByID(ctx, usage.MaterialID)
		if err != nil {
			return nil, fmt.Errorf("materia prima %s: %w", usage.MaterialID, err)
		}
		available, ok := uc.stock.MaterialStock(material.ID)
		if !ok {
			available = material.Stock
		}
		if available.LessThan(usage.Quantity) {
			return nil, fmt.Errorf("%s: disponible %s, requerido %s: %w",
				material.Name, available, usage.Quantity, domain.ErrInsufficientStock)
		}
		materials[i] = material
	}

	used := make([]entity.MaterialUsage, len(in.Materials))
	for i, usage := range in.Materials {
		used[i] = entity.MaterialUsage{
			MaterialID:   materials[i].ID,
			MaterialName: materials[i].Name,
			Quantity:     usage.Quantity,
		}
	}
	record := &entity.ManufacturingRecord{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      in.Quantity,
		Date:          date,
		MaterialsUsed: used,
	}
	if err := uc.manufacturingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	// Aplicación: primero entra el producto terminado, luego sale cada materia.
	// La orden ya está persistida; un fallo aquí es aplicación parcial.
	if err := uc.stock.ApplyProductDelta(ctx, product.ID, in.Quantity); err != nil {
		uc.log.Error().Err(err).Str("record_id", record.ID).Msg("producción registrada con aplicación parcial de stock")
		return nil, fmt.Errorf("producción %s registrada, stock aplicado parcialmente: %w",
			record.ID, domain.ErrPartialStockApply)
	}
	for _, usage := range record.MaterialsUsed {
		if err := uc.stock.ApplyMaterialDelta(ctx, usage.MaterialID, usage.Quantity.Neg()); err != nil {
			uc.log.Error().Err(err).
				Str("record_id", record.ID).
				Str("material_id", usage.MaterialID).
				Msg("producción registrada con aplicación parcial de stock")
			return nil, fmt.Errorf("producción %s registrada, stock aplicado parcialmente: %w",
				record.ID, domain.ErrPartialStockApply)
		}
	}

	uc.log.Info().
		Str("record_id", record.ID).
		Str("product", record.ProductName).
		Str("quantity", record.Quantity.String()).
		Msg("producción registrada")

	return toManufacturingResponse(record), nil
}

// List devuelve el historial de órdenes de producción.
func (uc *RegisterProductionUseCase) List(ctx context.Context) ([]dto.ManufacturingResponse, error) {
	records, err := uc.manufacturingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManufacturingResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toManufacturingResponse(r))
	}
	return out, nil
}

func toManufacturingResponse(r *entity.ManufacturingRecord) *dto.ManufacturingResponse {
	used := make([]dto.MaterialUsageResponse, 0, len(r.MaterialsUsed))
	for _, mu := range r.MaterialsUsed {
		used = append(used, dto.MaterialUsageResponse{
			MaterialID:   mu.MaterialID,
			MaterialName: mu.MaterialName,
			Quantity:     mu.Quantity,
		})
	}
	return &dto.ManufacturingResponse{
		ID:            r.ID,
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		Quantity:      r.Quantity,
		Date:          entity.FormatDate(r.Date),
		MaterialsUsed: used,
	}
}
