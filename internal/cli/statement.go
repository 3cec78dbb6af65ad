package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"atm-simulator/internal/config"
	"atm-simulator/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type statementCmd struct {
	format  string
	dir     string
	seed    uint64
	count   int
	preview bool
}

func (*statementCmd) Name() string { return "statement" }
func (*statementCmd) Synopsis() string {
	return "export a statement of the configured account after replaying demo activity"
}
func (*statementCmd) Usage() string {
	return `atm statement [-format csv|txt|html] [-dir <dir>] [-n <count>] [-seed <seed>] [-preview]

  Opens a session on the configured account, replays <count> pseudo-random
  deposits, withdrawals and transfers, then writes the account statement to
  <dir>. The same seed always replays the same activity.
`
}

func (p *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "format", string(services.ExportFormatCSV), "Export format (csv, txt, html).")
	f.StringVar(&p.dir, "dir", ".", "Directory the statement file is written to.")
	f.Uint64Var(&p.seed, "seed", 1806, "Seed for the demo activity; 0 picks a random seed.")
	f.IntVar(&p.count, "n", 10, "Number of demo operations to replay before exporting.")
	f.BoolVar(&p.preview, "preview", false, "Also print the statement to the terminal.")
}

func (p *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := services.ParseExportFormat(p.format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	cfg := config.Load()
	a, err := newApp(cfg, NewLogger(cfg.Logging, os.Stderr), appOptions{})
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
	defer session.EndSession()

	if !session.Authenticate(cfg.Account.Pin) {
		fmt.Fprintln(os.Stderr, "configured PIN was refused")
		return subcommands.ExitFailure
	}

	replayActivity(session, gofakeit.New(p.seed), p.count)

	statement := session.Statement()
	if p.preview {
		printMarkdown(os.Stdout, a.statements.Markdown(statement))
	}

	path, err := a.statements.ExportToFile(statement, format, p.dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(path)
	return subcommands.ExitSuccess
}

// replayActivity runs n random operations against session and returns how
// many of them completed. Refusals (limits, insufficient funds) are part of
// the demo and are not errors.
func replayActivity(session services.ATMServiceInterface, faker *gofakeit.Faker, n int) int {
	completed := 0
	for i := 0; i < n; i++ {
		amount := decimal.New(int64(faker.IntRange(10000, 500000)), -2)

		var ok bool
		switch faker.IntRange(0, 2) {
		case 0:
			ok = session.DepositMoney(amount)
		case 1:
			ok = session.WithdrawMoney(amount)
		default:
			ok = session.TransferMoney(amount, faker.Numerify("##########"))
		}
		if ok {
			completed++
		}
	}
	return completed
}
