package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cart/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	raw bool
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list the units left in the cart, lot by lot" }
func (*lotsCmd) Usage() string {
	return `lots [-raw]

  Lists, for each SKU, the lots not consumed by removals, with their value and the cart total.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *lotsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	crt, status := openOrFail()
	if status != subcommands.ExitSuccess {
		return status
	}

	md := renderer.RenderCart(renderer.NewCart(crt))
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	if err := printMarkdown(md); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
