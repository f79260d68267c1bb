package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/cart"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

const addArgs = "SKU QUANTITY DESCRIPTION PRICE CURRENCY"

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add units of a SKU to the cart" }
func (*addCmd) Usage() string {
	return `add ` + addArgs + `

  Appends QUANTITY units of SKU at a unit PRICE expressed in CURRENCY (EUR, GBP or USD).
  Prices in GBP or USD are converted into EUR before being recorded.
`
}

func (*addCmd) SetFlags(*flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	crt, status := openOrFail()
	if status != subcommands.ExitSuccess {
		return status
	}

	args := f.Args()
	if len(args) != 5 {
		return printUsage(c.Name(), addArgs)
	}
	sku, description, currency := args[0], args[2], args[4]

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return reportError(fmt.Errorf("%w: %q", cart.ErrInvalidQuantity, args[1]))
	}
	price, err := decimal.NewFromString(args[3])
	if err != nil {
		return reportError(fmt.Errorf("%w: %q", cart.ErrInvalidPrice, args[3]))
	}

	if err := crt.AddToCart(sku, description, quantity, price, currency); err != nil {
		return reportError(err)
	}

	fmt.Fprintf(stdout, "Entry by SKU '%s' successfully added\n", sku)
	printTotal(crt)
	return subcommands.ExitSuccess
}
