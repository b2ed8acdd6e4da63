package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/shopledger"
)

type setupCmd struct {
	username string
	password string
}

func (*setupCmd) Name() string     { return "setup" }
func (*setupCmd) Synopsis() string { return "create a new account with an empty ledger" }
func (*setupCmd) Usage() string {
	return `slg setup -u <username> -p <password>

  Creates a new account. The username names the ledger on disk and cannot
  be changed later.

Usage Examples:
$ slg setup -u alice -p secret

`
}

func (c *setupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username for the new account")
	f.StringVar(&c.password, "p", "", "Password for the new account")
}

func (c *setupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := shopledger.Setup(openStore(), c.username, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account %q created. You can now log in.\n", c.username)
	return subcommands.ExitSuccess
}
