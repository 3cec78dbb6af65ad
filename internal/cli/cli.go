package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"atm-simulator/internal/config"

	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&consoleCmd{}, "session")
	c.Register(&serveCmd{}, "session")
	c.Register(&statementCmd{}, "statements")
	c.Register(&migrateCmd{}, "audit store")
}

type consoleCmd struct {
	verbose bool
	audit   bool
}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "run an interactive ATM session in the terminal" }
func (*consoleCmd) Usage() string {
	return `atm console [-v] [-audit]

  Opens one ATM session on the configured account and drives it from the
  terminal: PIN entry, then the main menu until the customer exits or the
  session times out.
`
}

func (p *consoleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.verbose, "v", false, "Log audit events to stderr at the configured level instead of warnings only.")
	f.BoolVar(&p.audit, "audit", false, "Persist the audit trail to the configured audit store.")
}

func (p *consoleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	if !p.verbose {
		cfg.Logging.Level = "warn"
	}

	a, err := newApp(cfg, NewLogger(cfg.Logging, os.Stderr), appOptions{persistAudit: p.audit})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	session, err := a.newSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	console := NewConsole(session, a.statements, os.Stdin, os.Stdout, WithStatistics(a.stats))
	if err := console.Run(ctx); err != nil {
		if !errors.Is(err, ErrNoInput) {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
