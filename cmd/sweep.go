package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/equity"
	"github.com/etnz/equity/renderer"
)

// sweepCmd projects a scenario once per value of one dimension.
type sweepCmd struct {
	scenarioFlags
	dimension string
	values    string
	column    string
}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "compare projections over a range of rates" }
func (*sweepCmd) Usage() string {
	return `eqv sweep [-dimension <dim>] [-values <rates>] [-column <column>]

  Projects the scenario once per value of the dimension (growth, option-rate or
  common-rate) and prints one column of the ledger for every variant.
`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.StringVar(&c.dimension, "dimension", equity.OptionRedemption.String(), "swept rate: growth, option-rate or common-rate")
	f.StringVar(&c.values, "values", "0%,5%,10%", "comma separated rates")
	f.StringVar(&c.column, "column", "combined_total_value", "printed ledger column, e.g. options_shares_redeemed")
}

func (c *sweepCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dim, err := equity.ParseDimension(c.dimension)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -dimension: %v\n", err)
		return subcommands.ExitUsageError
	}
	values, err := equity.ParseRates(c.values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -values: %v\n", err)
		return subcommands.ExitUsageError
	}
	column, err := equity.ParseColumn(c.column)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -column: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, p, err := c.params(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in scenario: %v\n", err)
		return subcommands.ExitUsageError
	}

	variants, err := equity.Sweep(ctx, equity.NewCache(), p, dim, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sweeping %s: %v\n", dim, err)
		return subcommands.ExitFailure
	}
	for _, v := range variants {
		logOverRedemptions(v.Ledger)
	}
	printMarkdown(renderer.SweepMarkdown(variants, column, s.CurrencyCode()))
	return subcommands.ExitSuccess
}
