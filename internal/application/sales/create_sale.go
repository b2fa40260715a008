// Package sales implementa el motor de ventas: validar contra el espejo de
// existencias, numerar la factura, persistir la venta y descontar el stock,
// en ese orden.
package sales

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

// CreateSaleUseCase registra una venta siguiendo el protocolo
// validar → persistir → aplicar. La validación corre completa contra el estado
// pre-transacción; una vez persistido el registro no hay rollback: si un
// descuento de stock falla a mitad de camino, la venta queda registrada y el
// error se reporta como domain.ErrPartialStockApply.
type CreateSaleUseCase struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	stock        *stock.Ledger
	numbering    *InvoiceNumbering
	log          *logger.Logger
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	stockLedger *stock.Ledger,
	numbering *InvoiceNumbering,
	log *logger.Logger,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		stock:        stockLedger,
		numbering:    numbering,
		log:          log,
	}
}

// Create registra la venta y devuelve el registro persistido con su número de
// factura, para que el llamador pueda navegar a la vista de factura.
func (uc *CreateSaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" {
		return nil, fmt.Errorf("cliente no seleccionado: %w", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("la venta no tiene líneas: %w", domain.ErrInvalidInput)
	}
	if in.Discount.IsNegative() {
		return nil, fmt.Errorf("descuento negativo: %w", domain.ErrInvalidInput)
	}
	date, err := entity.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("fecha %q: %w", in.Date, domain.ErrInvalidInput)
	}

	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("cliente %s: %w", in.CustomerID, err)
	}

	// Validación completa contra el estado pre-transacción: existencia del
	// producto y suficiencia de stock por cada línea, antes de escribir nada.
	products := make([]*entity.Product, len(in.Items))
	for i, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.IsPositive() {
			return nil, fmt.Errorf("línea %d inválida: %w", i+1, domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", item.ProductID, err)
		}
		available, ok := uc.stock.ProductStock(product.ID)
		if !ok {
			available = product.StockQuantity
		}
		if available.LessThan(item.Quantity) {
			return nil, fmt.Errorf("%s: disponible %s, pedido %s: %w",
				product.Name, available, item.Quantity, domain.ErrInsufficientStock)
		}
		products[i] = product
	}

	invoiceNumber, err := uc.numbering.Next(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.SaleItem, len(in.Items))
	subtotal := decimal.Zero
	for i, item := range in.Items {
		product := products[i]
		lineTotal := item.Quantity.Mul(product.SalesPrice)
		items[i] = entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.SalesPrice,
			Total:       lineTotal,
		}
		subtotal = subtotal.Add(lineTotal)
	}

	sale := &entity.Sale{
		InvoiceNumber: invoiceNumber,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		Total:         subtotal.Sub(in.Discount),
		Date:          date,
		VehicleNumber: in.VehicleNumber,
	}
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	// Aplicación de deltas: el registro ya está persistido; un fallo aquí deja
	// la venta asentada y el stock aplicado solo en parte.
	for _, item := range sale.Items {
		if err := uc.stock.ApplyProductDelta(ctx, item.ProductID, item.Quantity.Neg()); err != nil {
			uc.log.Error().Err(err).
				Str("sale_id", sale.ID).
				Str("invoice", sale.InvoiceNumber).
				Str("product_id", item.ProductID).
				Msg("venta registrada con aplicación parcial de stock")
			return nil, fmt.Errorf("venta %s registrada, stock aplicado parcialmente: %w",
				sale.InvoiceNumber, domain.ErrPartialStockApply)
		}
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("invoice", sale.InvoiceNumber).
		Str("customer", sale.CustomerName).
		Str("total", sale.Total.String()).
		Msg("venta registrada")

	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por id (vista de factura).
func (uc *CreateSaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devuelve el historial de ventas.
func (uc *CreateSaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Items:         items,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		Date:          entity.FormatDate(s.Date),
		VehicleNumber: s.VehicleNumber,
	}
}
