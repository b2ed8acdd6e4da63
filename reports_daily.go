package shopledger

// This file holds the day-level aggregates. They are pure functions of the
// current ledger and a caller-supplied reference date, so reports can be
// computed for any day and tested without touching the clock.

// TodaySales returns the sales recorded for the given calendar date, in
// insertion order. Both the sales table and the daily aggregates are
// derived from this exact-date subsequence.
func (l *Ledger) TodaySales(on Date) []Sale {
	matching := make([]Sale, 0)
	for _, s := range l.Sales(BySaleDate(on)) {
		matching = append(matching, s)
	}
	return matching
}

// DailySales returns the sum of sale totals for the given calendar date.
func (l *Ledger) DailySales(on Date) Money {
	sum := USD(0)
	for _, s := range l.Sales(BySaleDate(on)) {
		sum = sum.Add(s.Total)
	}
	return sum
}

// DailyTransactionCount returns the number of sales recorded for the given
// calendar date.
func (l *Ledger) DailyTransactionCount(on Date) int {
	count := 0
	for range l.Sales(BySaleDate(on)) {
		count++
	}
	return count
}

// OutstandingDebt returns the sum of pending and overdue debt amounts.
// Paid debts never contribute.
func (l *Ledger) OutstandingDebt() Money {
	sum := USD(0)
	for _, d := range l.Debts(Outstanding) {
		sum = sum.Add(d.Amount)
	}
	return sum
}

// NetIncome returns the day's sales total minus the outstanding debt.
//
// Note that this subtracts a cumulative figure from a daily one: the
// outstanding debt is not scoped to the day. That is the book-keeping rule
// this ledger has always used, and reports depend on it staying that way.
func (l *Ledger) NetIncome(on Date) Money {
	return l.DailySales(on).Sub(l.OutstandingDebt())
}
