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

// projectCmd prints the year by year projection of a scenario.
type projectCmd struct {
	scenarioFlags
	detail bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the value of an equity grant year by year" }
func (*projectCmd) Usage() string {
	return `eqv project [-scenario <file>] [-growth <rate>] [-option-rate <rate>] ...

  Projects the scenario and prints the combined value of options and common
  shares for every year. Flags override the scenario values.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.BoolVar(&c.detail, "detail", false, "also print every column of both tracks")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, p, err := c.params(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in scenario: %v\n", err)
		return subcommands.ExitUsageError
	}

	l := equity.Project(p)
	logOverRedemptions(l)

	md := renderer.ProjectionMarkdown(l, s.CurrencyCode())
	if c.detail {
		md += "\n" + renderer.LedgerMarkdown(l, s.CurrencyCode())
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
