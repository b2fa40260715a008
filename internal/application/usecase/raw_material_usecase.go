package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/stock"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

// RawMaterialUseCase CRUD de materias primas.
type RawMaterialUseCase struct {
	repo  repository.RawMaterialRepository
	stock *stock.Ledger
	log   *logger.Logger
}

// NewRawMaterialUseCase construye el caso de uso.
func NewRawMaterialUseCase(repo repository.RawMaterialRepository, stockLedger *stock.Ledger, log *logger.Logger) *RawMaterialUseCase {
	return &RawMaterialUseCase{repo: repo, stock: stockLedger, log: log}
}

// Create da de alta una materia prima.
func (uc *RawMaterialUseCase) Create(ctx context.Context, in dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("nombre de materia prima vacío: %w", domain.ErrInvalidInput)
	}
	if in.Stock.IsNegative() || in.Threshold.IsNegative() || in.Price.IsNegative() {
		return nil, fmt.Errorf("materia prima %q con valores negativos: %w", in.Name, domain.ErrInvalidInput)
	}

	material := &entity.RawMaterial{
		Name:      in.Name,
		Stock:     in.Stock,
		Threshold: in.Threshold,
		Price:     in.Price,
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	uc.stock.TrackMaterial(material.ID, material.Stock)

	uc.log.Info().Str("material_id", material.ID).Str("name", material.Name).Msg("materia prima creada")
	return toRawMaterialResponse(material), nil
}

// Update edita una materia prima; una edición directa de stock re-sincroniza
// el espejo.
func (uc *RawMaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("nombre de materia prima vacío: %w", domain.ErrInvalidInput)
	}
	if in.Stock != nil && in.Stock.IsNegative() {
		return nil, fmt.Errorf("stock negativo: %w", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
	}

	patch := repository.RawMaterialPatch{
		Name:      in.Name,
		Stock:     in.Stock,
		Threshold: in.Threshold,
		Price:     in.Price,
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	if in.Stock != nil {
		uc.stock.TrackMaterial(id, *in.Stock)
	}

	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponse(material), nil
}

// GetByID obtiene una materia prima por id.
func (uc *RawMaterialUseCase) GetByID(ctx context.Context, id string) (*dto.RawMaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponse(material), nil
}

// List devuelve el catálogo de materias primas.
func (uc *RawMaterialUseCase) List(ctx context.Context) ([]dto.RawMaterialResponse, error) {
	materials, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RawMaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *toRawMaterialResponse(m))
	}
	return out, nil
}

// Delete elimina una materia prima y la saca del espejo.
func (uc *RawMaterialUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.stock.ForgetMaterial(id)
	uc.log.Info().Str("material_id", id).Msg("materia prima eliminada")
	return nil
}

func toRawMaterialResponse(m *entity.RawMaterial) *dto.RawMaterialResponse {
	return &dto.RawMaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Stock:     m.Stock,
		Threshold: m.Threshold,
		Price:     m.Price,
	}
}
