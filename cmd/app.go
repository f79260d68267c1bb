// Package cmd implements the CLI application to manage a cart ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cart"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file. Defaults to $CART_LEDGER_FILE, then ledger-file in .cart.yaml, then "+defaultLedgerFile)

// Verbose enables debug logging on stderr.
var Verbose = flag.Bool("v", false, "Verbose logging on stderr. Defaults to $CART_VERBOSE")

// stdout and stderr are the outputs of the subcommands.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands lists the cart subcommands.
var Commands = []subcommands.Command{
	&addCmd{},
	&removeCmd{},
	&viewCmd{},
	&lotsCmd{},
	&initCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	for _, cmd := range Commands {
		c.Register(cmd, "cart")
	}
}

// LedgerFile returns the path of the ledger file.
func LedgerFile() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	return config().GetString(keyLedgerFile)
}

// newLogger returns the console logger on stderr.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *Verbose || config().GetBool(keyVerbose) {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
}

// OpenCart opens the cart session on the app ledger file.
func OpenCart() (*cart.Cart, error) {
	logger := newLogger()
	path := LedgerFile()
	logger.Debug().Str("path", path).Msg("opening ledger")
	return cart.Open(path, cart.WithLogger(logger))
}

// openOrFail opens the cart, or reports why it could not.
func openOrFail() (*cart.Cart, subcommands.ExitStatus) {
	c, err := OpenCart()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return c, subcommands.ExitSuccess
}

// reportError prints an operation error the way the CLI always did: on stdout.
func reportError(err error) subcommands.ExitStatus {
	fmt.Fprintf(stdout, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printUsage prints the one line usage of a subcommand with positional arguments.
func printUsage(name, args string) subcommands.ExitStatus {
	fmt.Fprintf(stdout, "Usage: %s %s\n", name, args)
	return subcommands.ExitUsageError
}

// printTotal prints the current total of the cart.
func printTotal(c *cart.Cart) {
	fmt.Fprintf(stdout, "Current cart total: %s\n", c.Total())
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("error creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("error rendering markdown: %w", err)
	}
	_, err = io.WriteString(stdout, out)
	return err
}
