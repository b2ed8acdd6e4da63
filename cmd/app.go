// Package cmd implements the CLI application to keep a shop's books.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/shopledger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&setupCmd{}, "accounts")
	c.Register(&loginCmd{}, "accounts")
	c.Register(&logoutCmd{}, "accounts")
	c.Register(&whoamiCmd{}, "accounts")

	c.Register(&saleCmd{}, "sales")
	c.Register(&editSaleCmd{}, "sales")
	c.Register(&rmSaleCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")

	c.Register(&debtCmd{}, "debts")
	c.Register(&editDebtCmd{}, "debts")
	c.Register(&rmDebtCmd{}, "debts")
	c.Register(&debtsCmd{}, "debts")

	c.Register(&reportCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data", "", "Path to the data directory (default ~/.shopledger)")

// DataPath returns the data directory holding every account's ledger.
func DataPath() string {
	if *dataPath != "" {
		return *dataPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory, better than failing outright.
		return ".shopledger"
	}
	return filepath.Join(home, ".shopledger")
}

// openStore opens the record store every command persists through.
func openStore() shopledger.Store {
	return shopledger.NewDirStore(DataPath())
}

// openSession resumes the current account's session, or explains how to log in.
func openSession() (*shopledger.Session, error) {
	session, err := shopledger.Resume(openStore())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("nobody is logged in, run 'slg login' first")
	}
	return session, nil
}

// parseDateFlag parses a -d flag value, defaulting to today when empty.
func parseDateFlag(value string) (shopledger.Date, error) {
	if value == "" {
		return shopledger.Today(), nil
	}
	return shopledger.ParseDate(value)
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// Raw markdown is still readable.
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
