package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/shopledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Shell completion for the registered commands. A no-op unless the
	// shell is asking, in which case it prints candidates and exits.
	spec := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{"data": predict.Dirs("*")},
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		spec.Sub[c.Name()] = &complete.Command{}
	})
	spec.Complete(path.Base(os.Args[0]))

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
