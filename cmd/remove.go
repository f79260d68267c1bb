package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/cart"
	"github.com/google/subcommands"
)

const removeArgs = "SKU QUANTITY"

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove units of a SKU from the cart" }
func (*removeCmd) Usage() string {
	return `remove ` + removeArgs + `

  Appends a removal of QUANTITY units of SKU. Removals consume the earliest added units first.
`
}

func (*removeCmd) SetFlags(*flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	crt, status := openOrFail()
	if status != subcommands.ExitSuccess {
		return status
	}

	args := f.Args()
	if len(args) != 2 {
		return printUsage(c.Name(), removeArgs)
	}
	sku := args[0]

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return reportError(fmt.Errorf("%w: %q", cart.ErrInvalidQuantity, args[1]))
	}

	if err := crt.RemoveFromCart(sku, quantity); err != nil {
		return reportError(err)
	}

	fmt.Fprintf(stdout, "Entry by SKU '%s' successfully removed\n", sku)
	printTotal(crt)
	return subcommands.ExitSuccess
}
