package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/shopledger"
)

// DebtsMarkdown renders the full debts table with the outstanding total.
// All debts appear, paid ones included; only pending and overdue ones count
// toward the total.
func DebtsMarkdown(debts []shopledger.Debt, outstanding shopledger.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Customer Debts")
	if len(debts) == 0 {
		doc.PlainText("No debts recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Customer", "Amount", "Reason", "Due Date", "Status", "Id"},
		Rows:   [][]string{},
	}
	for _, d := range debts {
		table.Rows = append(table.Rows, []string{
			d.Customer,
			d.Amount.String(),
			d.Reason,
			d.DueDate.Display(),
			d.Status.Label(),
			fmt.Sprintf("%d", d.ID),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Outstanding: %s", md.Bold(outstanding.String())))

	return doc.String()
}
