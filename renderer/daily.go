// Package renderer turns report structs into markdown documents, ready for
// the terminal or any markdown viewer. It never computes figures itself:
// everything it prints comes from the report.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/shopledger"
)

// DailyMarkdown renders the daily report: the day's headline figures, the
// day's sales, and the full history.
func DailyMarkdown(r *shopledger.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Report for %s", r.Date.Display()))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Daily Sales", r.DailySales.String()},
			{"Transactions", fmt.Sprintf("%d", r.TransactionCount)},
			{"Outstanding Debts", r.OutstandingDebt.String()},
			{"Net Income", r.NetIncome.String()},
		},
	})

	if len(r.TodaySales) > 0 {
		doc.H2("Today's Sales")
		doc.Table(salesTable(r.TodaySales))
	}

	if len(r.History) > 0 {
		doc.H2("Sales History")
		doc.Table(historyTable(r.History))
	}

	return doc.String()
}
