package shopledger

// DailyReport provides an at-a-glance overview of one day's business:
// the day's sales, the outstanding debt, and the resulting net income,
// plus the full sales history for context.
type DailyReport struct {
	Date             Date
	Account          string
	DailySales       Money
	TransactionCount int
	OutstandingDebt  Money
	NetIncome        Money
	TodaySales       []Sale
	History          []Sale
}

// NewDailyReport computes the report of the given account's ledger for one
// calendar date. The ledger is not modified.
func NewDailyReport(account string, l *Ledger, on Date) *DailyReport {
	return &DailyReport{
		Date:             on,
		Account:          account,
		DailySales:       l.DailySales(on),
		TransactionCount: l.DailyTransactionCount(on),
		OutstandingDebt:  l.OutstandingDebt(),
		NetIncome:        l.NetIncome(on),
		TodaySales:       l.TodaySales(on),
		History:          l.History(),
	}
}
