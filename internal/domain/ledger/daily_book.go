package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// Tipos de asiento del libro diario.
const (
	EntryOpening  = "OPENING"
	EntrySale     = "SALE"
	EntryExpense  = "EXPENSE"
	EntryPurchase = "PURCHASE"
)

// Entry un renglón del libro diario reconstruido: crédito o débito y el saldo
// acumulado después de aplicar la transacción.
type Entry struct {
	Date        time.Time
	Description string
	Type        string
	Credit      decimal.Decimal
	Debit       decimal.Decimal
	Balance     decimal.Decimal
	Reference   string
}

// transacción intermedia ya etiquetada por tipo y monto.
type tagged struct {
	date        time.Time
	kind        string
	amount      decimal.Decimal
	description string
	reference   string
}

// BuildDailyBook reconstruye el libro diario para el rango [start, end]
// (inclusive) partiendo de un saldo de apertura dado por el llamador.
//
// Las ventas acreditan su total; los gastos y las compras debitan su monto y
// subtotal respectivamente. Los tres flujos se concatenan en orden
// ventas → gastos → compras y se ordenan establemente por fecha: los empates
// de fecha entre tipos distintos conservan ese orden de concatenación porque
// no existe una clave secundaria.
//
// Es una función pura de solo lectura: mismo input, mismo output, sin efectos.
func BuildDailyBook(
	sales []*entity.Sale,
	expenses []*entity.Expense,
	purchases []*entity.Purchase,
	start, end time.Time,
	openingBalance decimal.Decimal,
) []Entry {
	txs := make([]tagged, 0, len(sales)+len(expenses)+len(purchases))

	for _, s := range sales {
		if !inRange(s.Date, start, end) {
			continue
		}
		txs = append(txs, tagged{
			date:        s.Date,
			kind:        EntrySale,
			amount:      s.Total,
			description: fmt.Sprintf("Sale to %s", s.CustomerName),
			reference:   s.InvoiceNumber,
		})
	}
	for _, e := range expenses {
		if !inRange(e.Date, start, end) {
			continue
		}
		txs = append(txs, tagged{
			date:        e.Date,
			kind:        EntryExpense,
			amount:      e.Amount,
			description: e.Name,
			reference:   e.InvoiceNumber,
		})
	}
	for _, p := range purchases {
		if !inRange(p.Date, start, end) {
			continue
		}
		txs = append(txs, tagged{
			date:        p.Date,
			kind:        EntryPurchase,
			amount:      p.Subtotal,
			description: fmt.Sprintf("Purchase from %s", p.SupplierName),
			reference:   p.InvoiceNumber,
		})
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].date.Before(txs[j].date)
	})

	balance := openingBalance
	entries := make([]Entry, 0, len(txs)+1)
	entries = append(entries, Entry{
		Date:        start,
		Description: "Opening Balance",
		Type:        EntryOpening,
		Credit:      decimal.Zero,
		Debit:       decimal.Zero,
		Balance:     balance,
	})

	for _, tx := range txs {
		e := Entry{
			Date:        tx.date,
			Description: tx.description,
			Type:        tx.kind,
			Credit:      decimal.Zero,
			Debit:       decimal.Zero,
			Reference:   tx.reference,
		}
		if tx.kind == EntrySale {
			balance = balance.Add(tx.amount)
			e.Credit = tx.amount
		} else {
			// EXPENSE y PURCHASE reducen el saldo
			balance = balance.Sub(tx.amount)
			e.Debit = tx.amount
		}
		e.Balance = balance
		entries = append(entries, e)
	}

	return entries
}

// inRange pertenencia al rango cerrado [start, end].
func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
