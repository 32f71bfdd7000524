package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nadim-k/fintrack"
	"github.com/nadim-k/fintrack/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all recorded budget entries" }
func (*listCmd) Usage() string {
	return `ftk list

  Displays the budget ledger as a table, one row per recorded month.
`
}
func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := fintrack.LoadLedger(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BudgetMarkdown(ledger.Entries()))
	return subcommands.ExitSuccess
}

type logsCmd struct{}

func (*logsCmd) Name() string     { return "logs" }
func (*logsCmd) Synopsis() string { return "show the computation trace of every entry" }
func (*logsCmd) Usage() string {
	return `ftk logs

  Shows the derivation trace recorded when each entry was computed.
`
}
func (*logsCmd) SetFlags(*flag.FlagSet) {}

func (c *logsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := fintrack.LoadLedger(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LogsMarkdown(ledger.Entries()))
	return subcommands.ExitSuccess
}
