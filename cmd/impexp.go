package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/shopledger"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the account data to a backup file" }
func (*exportCmd) Usage() string {
	return `slg export [-o <file>]

  Writes the account's sales and debts to a JSON backup file. The
  default file name carries today's date. Use "-" to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to sales-backup-<today>.json)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	name := c.output
	if name == "" {
		name = shopledger.BackupFilename(shopledger.Today())
	}
	if name == "-" {
		if err := session.Export(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := session.Export(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %s's data to %s.\n", session.User(), name)
	return subcommands.ExitSuccess
}

type importCmd struct {
	input string
	yes   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the account data from a backup file" }
func (*importCmd) Usage() string {
	return `slg import -i <file> [-y]

  Replaces the account's sales and debts with the content of a backup
  file. A backup made by another account is rejected. The current data
  is overwritten, so the command asks before proceeding unless -y is
  given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to import")
	f.BoolVar(&c.yes, "y", false, "Import without asking for confirmation")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: a backup file is required (-i)")
		return subcommands.ExitUsageError
	}
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.yes && !confirm(fmt.Sprintf("Replace all of %s's data with %s?", session.User(), c.input)) {
		fmt.Println("Import cancelled.")
		return subcommands.ExitSuccess
	}
	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()
	if err := session.Import(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %s into %s's account.\n", c.input, session.User())
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
