package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/etnz/shopledger"
)

// historyTable builds the condensed table of past sales, most recent first.
func historyTable(sales []shopledger.Sale) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Customer", "Product", "Total", "Payment"},
		Rows:   [][]string{},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.SaleDate.Display(),
			s.CustomerName,
			s.Product,
			s.Total.String(),
			s.PaymentMethod.Label(),
		})
	}
	return table
}

// HistoryMarkdown renders the full sales history.
func HistoryMarkdown(sales []shopledger.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales History")
	if len(sales) == 0 {
		doc.PlainText("No sales recorded yet.")
		return doc.String()
	}
	doc.Table(historyTable(sales))

	return doc.String()
}
