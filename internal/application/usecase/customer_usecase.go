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

// CustomerUseCase alta y consulta de clientes. Sin edición: un cliente es
// inmutable una vez creado y suele darse de alta sobre la marcha al vender.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	log  *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, log: log}
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("nombre de cliente vacío: %w", domain.ErrInvalidInput)
	}

	customer := &entity.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	uc.log.Info().Str("customer_id", customer.ID).Str("name", customer.Name).Msg("cliente creado")
	return toCustomerResponse(customer), nil
}

// List devuelve los clientes registrados.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
	}
}
