package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/etnz/shopledger"
)

type debtFields struct {
	customer string
	amount   string
	reason   string
	due      string
	status   string
}

func (c *debtFields) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer owing the debt")
	f.StringVar(&c.amount, "a", "", "Amount owed")
	f.StringVar(&c.reason, "r", "", "Reason for the debt")
	f.StringVar(&c.due, "d", "", "Due date (defaults to today)")
	f.StringVar(&c.status, "s", "pending", "Status (pending, paid, overdue)")
}

func (c *debtFields) input() (shopledger.DebtInput, error) {
	if c.customer == "" {
		return shopledger.DebtInput{}, fmt.Errorf("a customer is required (-c)")
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return shopledger.DebtInput{}, fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	if amount.IsNegative() {
		return shopledger.DebtInput{}, fmt.Errorf("amount cannot be negative: %s", amount)
	}
	status, err := shopledger.ParseDebtStatus(c.status)
	if err != nil {
		return shopledger.DebtInput{}, err
	}
	due, err := parseDateFlag(c.due)
	if err != nil {
		return shopledger.DebtInput{}, err
	}
	return shopledger.DebtInput{
		Customer: c.customer,
		Amount:   shopledger.M(amount, shopledger.DefaultCurrency),
		Reason:   c.reason,
		DueDate:  due,
		Status:   status,
	}, nil
}

type debtCmd struct {
	debtFields
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record a customer debt" }
func (*debtCmd) Usage() string {
	return `slg debt -c <customer> -a <amount> [-r <reason>] [-d <due-date>] [-s <status>]

  Records a debt owed by a customer.

Usage Examples:
$ slg debt -c Ann -a 25.50 -r "unpaid groceries" -d 2026-09-15

`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	debt, err := session.AddDebt(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded debt %d: %s owes %s, due %s.\n",
		debt.ID, debt.Customer, debt.Amount, debt.DueDate.Display())
	return subcommands.ExitSuccess
}

type editDebtCmd struct {
	debtFields
	id int64
}

func (*editDebtCmd) Name() string     { return "edit-debt" }
func (*editDebtCmd) Synopsis() string { return "replace a debt with new fields" }
func (*editDebtCmd) Usage() string {
	return `slg edit-debt -id <id> -c <customer> -a <amount> [-r <reason>] [-d <due-date>] [-s <status>]

  Replaces the debt: the old record is deleted and the new fields are
  recorded as a fresh debt with a new id, appended at the end. Use it
  to mark a debt paid:

$ slg edit-debt -id 1718000000000 -c Ann -a 25.50 -s paid
`
}

func (c *editDebtCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Int64Var(&c.id, "id", 0, "Id of the debt to replace")
}

func (c *editDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, ok := session.Ledger().FindDebt(c.id); !ok {
		fmt.Fprintf(os.Stderr, "Warning: no debt %d, recording as a new debt.\n", c.id)
	}
	debt, err := session.ReplaceDebt(c.id, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Replaced debt %d with %d.\n", c.id, debt.ID)
	return subcommands.ExitSuccess
}

type rmDebtCmd struct {
	id int64
}

func (*rmDebtCmd) Name() string     { return "rm-debt" }
func (*rmDebtCmd) Synopsis() string { return "delete a debt" }
func (*rmDebtCmd) Usage() string {
	return `slg rm-debt -id <id>

  Deletes the debt. Deleting an id that does not exist does nothing.
`
}

func (c *rmDebtCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the debt to delete")
}

func (c *rmDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := session.DeleteDebt(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted debt %d.\n", c.id)
	return subcommands.ExitSuccess
}
