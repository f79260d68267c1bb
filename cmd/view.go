package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the current cart total" }
func (*viewCmd) Usage() string {
	return `view

  Displays the value of the units left in the cart, in EUR.
`
}

func (*viewCmd) SetFlags(*flag.FlagSet) {}

func (*viewCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	crt, status := openOrFail()
	if status != subcommands.ExitSuccess {
		return status
	}
	printTotal(crt)
	return subcommands.ExitSuccess
}
