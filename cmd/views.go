package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/shopledger"
	"github.com/etnz/shopledger/renderer"
)

type salesCmd struct {
	date string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales of a day" }
func (*salesCmd) Usage() string {
	return `slg sales [-d <date>]

  Lists the sales recorded on the given day, with the day's total.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to list (defaults to today)")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	l := session.Ledger()
	printMarkdown(renderer.SalesMarkdown(on, l.TodaySales(on), l.DailySales(on)))
	return subcommands.ExitSuccess
}

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list customer debts" }
func (*debtsCmd) Usage() string {
	return `slg debts

  Lists every recorded debt with the outstanding total. Paid debts
  stay in the list but do not count toward the total.
`
}

func (*debtsCmd) SetFlags(f *flag.FlagSet) {}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	l := session.Ledger()
	var debts []shopledger.Debt
	for _, d := range l.Debts(shopledger.AnyDebt) {
		debts = append(debts, d)
	}
	printMarkdown(renderer.DebtsMarkdown(debts, l.OutstandingDebt()))
	return subcommands.ExitSuccess
}

type reportCmd struct {
	date string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show the daily report" }
func (*reportCmd) Usage() string {
	return `slg report [-d <date>]

  Shows the daily report: the day's sales total, transaction count,
  outstanding debt, net income, and the sales history.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to report on (defaults to today)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report := shopledger.NewDailyReport(session.User(), session.Ledger(), on)
	printMarkdown(renderer.DailyMarkdown(report))
	return subcommands.ExitSuccess
}

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show all sales, most recent first" }
func (*historyCmd) Usage() string {
	return `slg history

  Shows every recorded sale, most recent day first.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(session.Ledger().History()))
	return subcommands.ExitSuccess
}
