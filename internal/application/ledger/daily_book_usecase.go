// Package ledger expone la reconstrucción del libro diario como caso de uso:
// carga los tres flujos transaccionales y delega en el algoritmo puro del
// dominio.
package ledger

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	domledger "github.com/tu-usuario/negocio-pro/internal/domain/ledger"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

// DailyBookUseCase genera el libro diario de un rango de fechas. Solo lectura:
// no hay asientos persistidos, el libro se reconstruye en cada consulta.
type DailyBookUseCase struct {
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
	purchaseRepo repository.PurchaseRepository
}

// NewDailyBookUseCase construye el caso de uso.
func NewDailyBookUseCase(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	purchaseRepo repository.PurchaseRepository,
) *DailyBookUseCase {
	return &DailyBookUseCase{
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Build reconstruye el libro diario del rango [start_date, end_date] inclusive.
func (uc *DailyBookUseCase) Build(ctx context.Context, in dto.DailyBookRequest) (*dto.DailyBookResponse, error) {
	start, err := entity.ParseDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("fecha inicial %q: %w", in.StartDate, domain.ErrInvalidInput)
	}
	end, err := entity.ParseDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("fecha final %q: %w", in.EndDate, domain.ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("rango invertido %s..%s: %w", in.StartDate, in.EndDate, domain.ErrInvalidInput)
	}

	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar ventas: %w", err)
	}
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar gastos: %w", err)
	}
	purchases, err := uc.purchaseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar compras: %w", err)
	}

	entries := domledger.BuildDailyBook(sales, expenses, purchases, start, end, in.OpeningBalance)

	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryResponse{
			Date:        entity.FormatDate(e.Date),
			Description: e.Description,
			Type:        e.Type,
			Credit:      e.Credit,
			Debit:       e.Debit,
			Balance:     e.Balance,
			Reference:   e.Reference,
		})
	}
	return &dto.DailyBookResponse{
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		OpeningBalance: in.OpeningBalance,
		Entries:        out,
	}, nil
}
