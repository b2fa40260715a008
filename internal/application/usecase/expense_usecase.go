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

// ExpenseUseCase registro y consulta de gastos sueltos. Solo-inserción: los
// gastos no tocan inventario y alimentan la columna débito del libro diario.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
	log  *logger.Logger
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, log *logger.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, log: log}
}

// Create registra un gasto.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("concepto de gasto vacío: %w", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("monto de gasto inválido: %w", domain.ErrInvalidInput)
	}
	date, err := entity.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha %q: %w", in.Date, domain.ErrInvalidInput)
	}

	expense := &entity.Expense{
		InvoiceNumber: in.InvoiceNumber,
		Date:          date,
		Name:          in.Name,
		Amount:        in.Amount,
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	uc.log.Info().Str("expense_id", expense.ID).Str("name", expense.Name).Str("amount", expense.Amount.String()).Msg("gasto registrado")
	return toExpenseResponse(expense), nil
}

// List devuelve los gastos registrados.
func (uc *ExpenseUseCase) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		InvoiceNumber: e.InvoiceNumber,
		Date:          entity.FormatDate(e.Date),
		Name:          e.Name,
		Amount:        e.Amount,
	}
}
