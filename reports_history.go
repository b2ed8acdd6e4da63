package shopledger

import "sort"

// History returns every sale in the ledger, most recent date first.
//
// The sort is stable: sales on the same date keep their insertion order,
// since a date-only comparison cannot recover any sub-day ordering.
func (l *Ledger) History() []Sale {
	sorted := make([]Sale, len(l.sales))
	copy(sorted, l.sales)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].SaleDate.Before(sorted[i].SaleDate)
	})
	return sorted
}
