package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/equity"
)

// initCmd writes the built-in scenario as a starting point.
type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write the default scenario file" }
func (*initCmd) Usage() string {
	return `eqv init [-f] [<file>]

  Writes the built-in scenario in YAML to <file>, or to stdout. An existing file
  is only overwritten with -f.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "overwrite an existing file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := equity.DefaultScenario()
	s.Currency = settings.Currency

	switch f.NArg() {
	case 0:
		if err := equity.EncodeScenario(stdout, s); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing scenario: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	case 1:
	default:
		fmt.Fprintln(os.Stderr, "Error: init expects at most one file name")
		return subcommands.ExitUsageError
	}

	name := f.Arg(0)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !c.force {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(name, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		fmt.Fprintf(os.Stderr, "Error: %q already exists, use -f to overwrite it\n", name)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	if err := equity.EncodeScenario(file, s); err != nil {
		file.Close()
		fmt.Fprintf(os.Stderr, "Error writing scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Scenario written to %s\n", name)
	return subcommands.ExitSuccess
}
