package shopledger

import (
	"iter"
	"time"
)

// Ledger holds one account's sales and debts.
//
// Both collections are kept in insertion order: records are appended at the
// end, and that order is also the display and filter basis. Ids are
// creation-time millisecond timestamps, unique within the account only.
type Ledger struct {
	sales  []Sale
	debts  []Debt
	lastID int64 // highest id ever seen, to keep ids unique within the account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		sales: make([]Sale, 0),
		debts: make([]Debt, 0),
	}
}

// newLedgerFrom builds a ledger around existing records, as decoded from a
// persisted document or an imported backup.
func newLedgerFrom(sales []Sale, debts []Debt) *Ledger {
	l := &Ledger{sales: sales, debts: debts}
	if l.sales == nil {
		l.sales = make([]Sale, 0)
	}
	if l.debts == nil {
		l.debts = make([]Debt, 0)
	}
	for _, s := range l.sales {
		if s.ID > l.lastID {
			l.lastID = s.ID
		}
	}
	for _, d := range l.debts {
		if d.ID > l.lastID {
			l.lastID = d.ID
		}
	}
	return l
}

// nextID derives a fresh record id from the clock. Two records created in
// the same millisecond still get distinct ids.
func (l *Ledger) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// AddSale assigns a fresh id, computes the total from quantity and price,
// and appends the sale. It returns the stored record.
func (l *Ledger) AddSale(in SaleInput, now time.Time) Sale {
	sale := Sale{
		ID:            l.nextID(now),
		CustomerName:  in.CustomerName,
		Product:       in.Product,
		Quantity:      in.Quantity,
		Price:         in.Price,
		Total:         in.Price.MulInt(in.Quantity),
		PaymentMethod: in.PaymentMethod,
		SaleDate:      in.SaleDate,
	}
	l.sales = append(l.sales, sale)
	return sale
}

// AddDebt assigns a fresh id and appends the debt. It returns the stored record.
func (l *Ledger) AddDebt(in DebtInput, now time.Time) Debt {
	debt := Debt{
		ID:       l.nextID(now),
		Customer: in.Customer,
		Amount:   in.Amount,
		Reason:   in.Reason,
		DueDate:  in.DueDate,
		Status:   in.Status,
	}
	l.debts = append(l.debts, debt)
	return debt
}

// DeleteSale removes the sale with the given id. Deleting an id that is not
// in the ledger is a silent no-op.
func (l *Ledger) DeleteSale(id int64) {
	for i, s := range l.sales {
		if s.ID == id {
			l.sales = append(l.sales[:i], l.sales[i+1:]...)
			return
		}
	}
}

// DeleteDebt removes the debt with the given id. Deleting an id that is not
// in the ledger is a silent no-op.
func (l *Ledger) DeleteDebt(id int64) {
	for i, d := range l.debts {
		if d.ID == id {
			l.debts = append(l.debts[:i], l.debts[i+1:]...)
			return
		}
	}
}

// FindSale returns the sale with the given id. The edit flow uses it to
// prefill a form before the delete-and-recreate cycle.
func (l *Ledger) FindSale(id int64) (Sale, bool) {
	for _, s := range l.sales {
		if s.ID == id {
			return s, true
		}
	}
	return Sale{}, false
}

// FindDebt returns the debt with the given id.
func (l *Ledger) FindDebt(id int64) (Debt, bool) {
	for _, d := range l.debts {
		if d.ID == id {
			return d, true
		}
	}
	return Debt{}, false
}

// Sales returns an iterator that yields sales in insertion order.
// A sale is yielded when at least one filter accepts it.
func (l *Ledger) Sales(filters ...func(Sale) bool) iter.Seq2[int, Sale] {
	return func(yield func(int, Sale) bool) {
		for i, s := range l.sales {
			accept := false
			for _, filter := range filters {
				if filter(s) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, s) {
				return
			}
		}
	}
}

// Debts returns an iterator that yields debts in insertion order.
// A debt is yielded when at least one filter accepts it.
func (l *Ledger) Debts(filters ...func(Debt) bool) iter.Seq2[int, Debt] {
	return func(yield func(int, Debt) bool) {
		for i, d := range l.debts {
			accept := false
			for _, filter := range filters {
				if filter(d) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, d) {
				return
			}
		}
	}
}

// AnySale accepts every sale.
func AnySale(Sale) bool { return true }

// AnyDebt accepts every debt.
func AnyDebt(Debt) bool { return true }

// BySaleDate returns a predicate that filters sales by exact calendar date.
func BySaleDate(on Date) func(Sale) bool {
	return func(s Sale) bool { return s.SaleDate == on }
}

// Outstanding accepts debts that still count toward the outstanding total.
func Outstanding(d Debt) bool { return d.Status.Outstanding() }
