package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cart"
	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an empty ledger file" }
func (*initCmd) Usage() string {
	return `init

  Creates the ledger file, and its folder, if it does not exist yet.
`
}

func (*initCmd) SetFlags(*flag.FlagSet) {}

func (*initCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := LedgerFile()
	created, err := cart.CreateLedgerFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !created {
		fmt.Fprintf(stdout, "Ledger file %q already exists\n", path)
		return subcommands.ExitSuccess
	}
	logger := newLogger()
	logger.Debug().Str("path", path).Msg("ledger created")
	fmt.Fprintf(stdout, "Created empty ledger file %q\n", path)
	return subcommands.ExitSuccess
}
