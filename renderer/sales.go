package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/shopledger"
)

// salesTable builds the standard sales table used by both the sales view
// and the daily report.
func salesTable(sales []shopledger.Sale) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Customer", "Product", "Qty", "Price", "Total", "Payment", "Date", "Id"},
		Rows:   [][]string{},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.CustomerName,
			s.Product,
			fmt.Sprintf("%d", s.Quantity),
			s.Price.String(),
			s.Total.String(),
			s.PaymentMethod.Label(),
			s.SaleDate.Display(),
			fmt.Sprintf("%d", s.ID),
		})
	}
	return table
}

// SalesMarkdown renders one day's sales table with its total. The id column
// is what the edit and delete commands take.
func SalesMarkdown(on shopledger.Date, sales []shopledger.Sale, total shopledger.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sales on %s", on.Display()))
	if len(sales) == 0 {
		doc.PlainText("No sales recorded for this day.")
		return doc.String()
	}
	doc.Table(salesTable(sales))
	doc.PlainText(fmt.Sprintf("Total: %s", md.Bold(total.String())))

	return doc.String()
}
