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

// saleFields holds the flags shared by the record and edit commands.
type saleFields struct {
	customer string
	product  string
	quantity int64
	price    string
	method   string
	date     string
}

func (c *saleFields) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer name")
	f.StringVar(&c.product, "P", "", "Product sold")
	f.Int64Var(&c.quantity, "q", 1, "Quantity sold")
	f.StringVar(&c.price, "p", "", "Unit price")
	f.StringVar(&c.method, "m", "cash", "Payment method (cash, credit, mobile, card)")
	f.StringVar(&c.date, "d", "", "Sale date (defaults to today)")
}

// input validates the flags into a SaleInput.
func (c *saleFields) input() (shopledger.SaleInput, error) {
	if c.product == "" {
		return shopledger.SaleInput{}, fmt.Errorf("a product is required (-P)")
	}
	if c.quantity <= 0 {
		return shopledger.SaleInput{}, fmt.Errorf("quantity must be positive, got %d", c.quantity)
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return shopledger.SaleInput{}, fmt.Errorf("invalid price %q: %w", c.price, err)
	}
	if price.IsNegative() {
		return shopledger.SaleInput{}, fmt.Errorf("price cannot be negative: %s", price)
	}
	method, err := shopledger.ParsePaymentMethod(c.method)
	if err != nil {
		return shopledger.SaleInput{}, err
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		return shopledger.SaleInput{}, err
	}
	return shopledger.SaleInput{
		CustomerName:  c.customer,
		Product:       c.product,
		Quantity:      c.quantity,
		Price:         shopledger.M(price, shopledger.DefaultCurrency),
		PaymentMethod: method,
		SaleDate:      on,
	}, nil
}

type saleCmd struct {
	saleFields
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale" }
func (*saleCmd) Usage() string {
	return `slg sale -c <customer> -P <product> -q <quantity> -p <price> [-m <method>] [-d <date>]

  Records a sale. The total is quantity times price, computed for you.

Usage Examples:
$ slg sale -c Ann -P Widget -q 3 -p 10.00 -m cash

`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	sale, err := session.AddSale(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded sale %d: %d x %s at %s, total %s.\n",
		sale.ID, sale.Quantity, sale.Product, sale.Price, sale.Total)
	return subcommands.ExitSuccess
}

type editSaleCmd struct {
	saleFields
	id int64
}

func (*editSaleCmd) Name() string     { return "edit-sale" }
func (*editSaleCmd) Synopsis() string { return "replace a sale with new fields" }
func (*editSaleCmd) Usage() string {
	return `slg edit-sale -id <id> -c <customer> -P <product> -q <quantity> -p <price> [-m <method>] [-d <date>]

  Replaces the sale: the old record is deleted and the new fields are
  recorded as a fresh sale with a new id, appended at the end.
`
}

func (c *editSaleCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Int64Var(&c.id, "id", 0, "Id of the sale to replace")
}

func (c *editSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if _, ok := session.Ledger().FindSale(c.id); !ok {
		fmt.Fprintf(os.Stderr, "Warning: no sale %d, recording as a new sale.\n", c.id)
	}
	sale, err := session.ReplaceSale(c.id, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Replaced sale %d with %d.\n", c.id, sale.ID)
	return subcommands.ExitSuccess
}

type rmSaleCmd struct {
	id int64
}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "delete a sale" }
func (*rmSaleCmd) Usage() string {
	return `slg rm-sale -id <id>

  Deletes the sale. Deleting an id that does not exist does nothing.
`
}

func (c *rmSaleCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the sale to delete")
}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := session.DeleteSale(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted sale %d.\n", c.id)
	return subcommands.ExitSuccess
}
