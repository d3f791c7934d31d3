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

// reportCmd renders the full markdown report of a scenario.
type reportCmd struct {
	scenarioFlags
	noCharts bool
	noDetail bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render a full projection report" }
func (*reportCmd) Usage() string {
	return `eqv report [-scenario <file>] [-no-charts] [-no-detail]

  Renders the assumptions, the final summary per track, the sensitivity charts
  and the year by year ledger of a scenario.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.BoolVar(&c.noCharts, "no-charts", false, "skip the sensitivity charts")
	f.BoolVar(&c.noDetail, "no-detail", false, "skip the year by year ledger")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, p, err := c.params(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in scenario: %v\n", err)
		return subcommands.ExitUsageError
	}
	currency := s.CurrencyCode()

	// The report ledger and the chart variants share one cache.
	cache := equity.NewCache()
	l := cache.Project(p)
	logOverRedemptions(l)

	report := renderer.NewReport(s.Name, currency, l)
	if !c.noCharts {
		charts, err := equity.BuildCharts(ctx, cache, p, equity.DefaultCharts(p))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building charts: %v\n", err)
			return subcommands.ExitFailure
		}
		report.Charts = renderer.ChartsMarkdown(charts, currency)
	}
	if !c.noDetail {
		report.Detail = renderer.LedgerMarkdown(l, currency)
	}

	printMarkdown(renderer.RenderReport(report, renderer.ReportRenderOptions{
		SkipCharts: c.noCharts,
		SkipDetail: c.noDetail,
	}))
	return subcommands.ExitSuccess
}
