package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/equity"
)

// getCmd evaluates a JSONPath expression over the projected ledger.
type getCmd struct {
	scenarioFlags
}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "query the projected ledger with a JSONPath expression" }
func (*getCmd) Usage() string {
	return `eqv get [-scenario <file>] <jsonpath>

  Evaluates the JSONPath expression against the JSON form of the ledger, for
  instance:

    eqv get '$.years[?(@.year==2035)].combinedTotalValue'

  Strings are printed as is, any other value as JSON.
`
}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: get expects exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	_, p, err := c.params(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in scenario: %v\n", err)
		return subcommands.ExitUsageError
	}

	v, err := equity.Query(equity.Project(p), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if s, ok := v.(string); ok {
		fmt.Fprintln(stdout, s)
		return subcommands.ExitSuccess
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(data))
	return subcommands.ExitSuccess
}
