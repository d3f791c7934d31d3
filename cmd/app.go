// Package cmd implements the eqv subcommands.
package cmd

import (
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/equity/config"
)

// Commands lists every eqv subcommand, in help order.
var Commands = []subcommands.Command{
	&projectCmd{},
	&reportCmd{},
	&sweepCmd{},
	&exportCmd{},
	&getCmd{},
	&initCmd{},
	&topicCmd{},
	&serveCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// settings are the environment settings, flags override them.
var settings = &config.Config{Env: "development", Currency: "GBP", Addr: ":8080"}

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// Configure sets the environment settings used by every command.
func Configure(cfg *config.Config) {
	if cfg != nil {
		settings = cfg
	}
}
