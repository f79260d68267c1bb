package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the cart commands and their flags.
func Completion() *complete.Command {
	names := make(predict.Set, 0, len(Commands))
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*"),
			"v":           predict.Set{},
		},
	}

	for _, c := range Commands {
		names = append(names, c.Name())
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		f.VisitAll(func(fl *flag.Flag) { sub.Flags[fl.Name] = predict.Set{} })
		root.Sub[c.Name()] = sub
	}
	root.Sub["help"] = &complete.Command{Args: names}
	root.Sub["flags"] = &complete.Command{}
	root.Sub["commands"] = &complete.Command{}
	return root
}
