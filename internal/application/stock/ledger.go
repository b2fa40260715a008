// Package stock mantiene el espejo en memoria de las existencias: la autoridad
// por proceso para Product.StockQuantity y RawMaterial.Stock. Toda mutación de
// cantidades pasa por ApplyProductDelta / ApplyMaterialDelta, que escriben
// primero en el almacén y luego actualizan el espejo, de modo que una lectura
// posterior a una mutación exitosa siempre la refleja dentro del proceso.
//
// El ledger no impone la no-negatividad: esa verificación corresponde a los
// motores de transacción, antes de aplicar el delta.
package stock

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/domain/repository"
)

// Ledger espejo de existencias con escritura directa al almacén.
type Ledger struct {
	mu        sync.RWMutex
	products  map[string]decimal.Decimal
	materials map[string]decimal.Decimal

	productRepo  repository.ProductRepository
	materialRepo repository.RawMaterialRepository
}

// NewLedger construye el ledger vacío; llamar Load antes de operar.
func NewLedger(productRepo repository.ProductRepository, materialRepo repository.RawMaterialRepository) *Ledger {
	return &Ledger{
		products:     make(map[string]decimal.Decimal),
		materials:    make(map[string]decimal.Decimal),
		productRepo:  productRepo,
		materialRepo: materialRepo,
	}
}

// Load calienta el espejo con las existencias actuales del almacén.
func (l *Ledger) Load(ctx context.Context) error {
	products, err := l.productRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargar productos: %w", err)
	}
	materials, err := l.materialRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargar materias primas: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.products = make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		l.products[p.ID] = p.StockQuantity
	}
	l.materials = make(map[string]decimal.Decimal, len(materials))
	for _, m := range materials {
		l.materials[m.ID] = m.Stock
	}
	return nil
}

// ProductStock existencia actual de un producto según el espejo.
func (l *Ledger) ProductStock(id string) (decimal.Decimal, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	qty, ok := l.products[id]
	return qty, ok
}

// MaterialStock existencia actual de una materia prima según el espejo.
func (l *Ledger) MaterialStock(id string) (decimal.Decimal, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	qty, ok := l.materials[id]
	return qty, ok
}

// ApplyProductDelta aplica un delta (positivo o negativo) a la existencia de un
// producto: persiste la cantidad resultante y luego actualiza el espejo.
func (l *Ledger) ApplyProductDelta(ctx context.Context, id string, delta decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.products[id]
	if !ok {
		p, err := l.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		current = p.StockQuantity
	}
	next := current.Add(delta)
	if err := l.productRepo.Update(ctx, id, repository.ProductPatch{StockQuantity: &next}); err != nil {
		return fmt.Errorf("persistir stock de producto %s: %w", id, err)
	}
	l.products[id] = next
	return nil
}

// ApplyMaterialDelta aplica un delta a la existencia de una materia prima.
func (l *Ledger) ApplyMaterialDelta(ctx context.Context, id string, delta decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.materials[id]
	if !ok {
		m, err := l.materialRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		current = m.Stock
	}
	next := current.Add(delta)
	if err := l.materialRepo.Update(ctx, id, repository.RawMaterialPatch{Stock: &next}); err != nil {
		return fmt.Errorf("persistir stock de materia prima %s: %w", id, err)
	}
	l.materials[id] = next
	return nil
}

// TrackProduct registra o re-sincroniza la existencia de un producto en el
// espejo (altas y ediciones directas del usuario, no transacciones).
func (l *Ledger) TrackProduct(id string, qty decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.products[id] = qty
}

// ForgetProduct saca un producto eliminado del espejo.
func (l *Ledger) ForgetProduct(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.products, id)
}

// TrackMaterial registra o re-sincroniza la existencia de una materia prima.
func (l *Ledger) TrackMaterial(id string, qty decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.materials[id] = qty
}

// ForgetMaterial saca una materia prima eliminada del espejo.
func (l *Ledger) ForgetMaterial(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.materials, id)
}
