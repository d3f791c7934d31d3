package main

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/equity"
	"github.com/etnz/equity/docs"
)

// flagPredictors completes flag values by flag name, other flags accept
// anything.
var flagPredictors = map[string]complete.Predictor{
	"scenario":  predict.Files("*.yaml"),
	"o":         predict.Files("*"),
	"format":    predict.Set{"csv", "json"},
	"basis":     predict.Set{equity.BasisVested.String(), equity.BasisGranted.String()},
	"dimension": predict.Set{equity.OptionRedemption.String(), equity.CommonRedemption.String(), equity.Growth.String()},
	"column":    columns(),
}

// completion returns the completion tree of the commands, built from their
// flag sets.
func completion(commands []subcommands.Command) *complete.Command {
	root := &complete.Command{Sub: map[string]*complete.Command{
		"help":     {Args: commandNames(commands)},
		"flags":    {Args: commandNames(commands)},
		"commands": {},
	}}
	for _, c := range commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)

		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		f.VisitAll(func(fl *flag.Flag) {
			p, ok := flagPredictors[fl.Name]
			switch {
			case ok:
			case isBool(fl):
				p = predict.Nothing
			default:
				p = predict.Something
			}
			sub.Flags[fl.Name] = p
		})
		switch c.Name() {
		case "topic":
			sub.Args = topics()
		case "init":
			sub.Args = predict.Files("*.yaml")
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func commandNames(commands []subcommands.Command) predict.Set {
	var names predict.Set
	for _, c := range commands {
		names = append(names, c.Name())
	}
	return names
}

func columns() predict.Set {
	var names predict.Set
	for _, c := range equity.CSVColumns() {
		names = append(names, c.String())
	}
	return names
}

func topics() predict.Set {
	all, err := docs.Topics()
	if err != nil {
		return nil
	}
	names := predict.Set{"*"}
	for _, t := range all {
		names = append(names, t.Name)
	}
	return names
}
