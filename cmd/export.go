package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/equity"
)

// exportCmd writes the full ledger as CSV or JSON.
type exportCmd struct {
	scenarioFlags
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the projected ledger as CSV or JSON" }
func (*exportCmd) Usage() string {
	return `eqv export [-format csv|json] [-o <file>]

  Writes every column of the projected ledger, at full precision, to the output
  file or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.StringVar(&c.format, "format", "csv", "output format: csv or json")
	f.StringVar(&c.output, "o", "", "output file, defaults to stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var encode func(io.Writer, *equity.Ledger) error
	switch c.format {
	case "csv":
		encode = equity.EncodeCSV
	case "json":
		encode = equity.EncodeLedger
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, must be csv or json\n", c.format)
		return subcommands.ExitUsageError
	}

	_, p, err := c.params(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in scenario: %v\n", err)
		return subcommands.ExitUsageError
	}
	l := equity.Project(p)
	logOverRedemptions(l)

	if c.output == "" {
		if err := encode(stdout, l); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := encode(file, l); err != nil {
		file.Close()
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
