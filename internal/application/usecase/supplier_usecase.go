package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
	"github.com/tu-usuario/negocio-pro/pkg/logger"
)

// SupplierUseCase alta y consulta de proveedores. Sin edición, igual que clientes.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	log  *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, log: log}
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("nombre de proveedor vacío: %w", domain.ErrInvalidInput)
	}

	supplier := &entity.Supplier{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	uc.log.Info().Str("supplier_id", supplier.ID).Str("name", supplier.Name).Msg("proveedor creado")
	return toSupplierResponse(supplier), nil
}

// List devuelve los proveedores registrados.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Phone:   s.Phone,
		Address: s.Address,
	}
}
