package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nadim-k/fintrack"
)

type addCmd struct {
	budgetFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "compute and record one month of budget data" }
func (*addCmd) Usage() string {
	return `ftk add -salary <amount> [-m <month>] [-phone <amount>] [-petrol <amount>] [-rent <annual>] [-living <amount>] [-debt <amount>] [-debt-type personal|housing]

  Computes the month's expenses, savings and investable amount, appends the
  entry to the ledger and saves it immediately.
`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
		return subcommands.ExitUsageError
	}

	entry, err := fintrack.ComputeMonth(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing month: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := fintrack.LoadLedger(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	ledger.Append(entry)
	if err := fintrack.SaveLedger(*ledgerFile, ledger); err != nil {
		// in-memory state is not rolled back; the entry is lost on exit
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	rate, err := fintrack.SavingsRatePreview(in)
	if err != nil {
		rate = 0
	}
	fmt.Printf("Added %s: savings rate %s, invested %.2f\n", entry.Month, rate, entry.Invested.AsFloat())
	return subcommands.ExitSuccess
}
