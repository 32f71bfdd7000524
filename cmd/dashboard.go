package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nadim-k/fintrack"
	"github.com/nadim-k/fintrack/renderer"
)

type dashboardCmd struct {
	wallet  string
	timeout time.Duration
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "value the wallet's holdings in AED" }
func (*dashboardCmd) Usage() string {
	return `ftk dashboard -wallet <name> [-timeout <duration>]

  Fetches the wallet's balances, live pair quotes and the USD/AED rate in
  one refresh pass, and displays the valued holdings with the daily PnL.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.wallet, "wallet", "", "Name of the saved wallet to refresh.")
	f.DurationVar(&c.timeout, "timeout", 30*time.Second, "Overall refresh deadline.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wallets, err := fintrack.LoadWallets(*walletsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallets %q: %v\n", *walletsFile, err)
		return subcommands.ExitFailure
	}
	wallet, ok := wallets.Get(c.wallet)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: wallet %q not found.\n", c.wallet)
		return subcommands.ExitUsageError
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	exchange := fintrack.NewExchange(wallet)

	// the FX rate and the balances do not depend on each other
	rates := make(chan fintrack.Quantity, 1)
	go func() { rates <- fintrack.USDAEDOrFallback(ctx, fintrack.FxURL) }()

	balances, err := exchange.GetBalances(ctx)
	switch {
	case errors.Is(err, fintrack.ErrAuth):
		fmt.Fprintf(os.Stderr, "Error: exchange rejected the credentials of wallet %q.\n", c.wallet)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error fetching balances: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot, err := fintrack.Valuate(ctx, balances, exchange, <-rates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(snapshot))
	return subcommands.ExitSuccess
}
