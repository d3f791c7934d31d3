package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"

	"github.com/etnz/equity/server"
)

// serveCmd serves the HTTP API.
type serveCmd struct {
	scenarioFlags
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve projections over HTTP" }
func (*serveCmd) Usage() string {
	return `eqv serve [-addr <addr>] [-scenario <file>]

  Serves the JSON API. Request scenarios are completed with the values of the
  given scenario, the built-in one by default.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.StringVar(&c.addr, "addr", "", "listen address, defaults to $EQV_ADDR or :8080")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Defaults are validated once here, requests only override them.
	s, _, err := c.params(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in scenario: %v\n", err)
		return subcommands.ExitUsageError
	}
	addr := c.addr
	if addr == "" {
		addr = settings.Addr
	}
	if settings.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, addr, server.NewRouter(server.NewHandler(s))); err != nil {
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
