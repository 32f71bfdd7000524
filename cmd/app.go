// Package cmd implements the CLI application to track a personal budget and
// an exchange wallet dashboard.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nadim-k/fintrack"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "budget")
	c.Register(&previewCmd{}, "budget")
	c.Register(&listCmd{}, "budget")
	c.Register(&logsCmd{}, "budget")
	c.Register(&deleteCmd{}, "budget")
	c.Register(&clearCmd{}, "budget")

	c.Register(&growthCmd{}, "growth")

	c.Register(&walletSaveCmd{}, "wallet")
	c.Register(&walletListCmd{}, "wallet")
	c.Register(&walletDeleteCmd{}, "wallet")
	c.Register(&dashboardCmd{}, "wallet")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "finance_data.json", "Path to the budget ledger file (JSON)")
var walletsFile = flag.String("wallets-file", "binance_wallets.json", "Path to the saved wallets file (JSON)")

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw text when the renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseAmount parses a user-supplied numeric field into local-currency
// money. The empty string is zero, matching the live-preview behavior for
// untouched fields.
func parseAmount(field, s string) (fintrack.Money, error) {
	if s == "" {
		return fintrack.M(0, fintrack.LocalCurrency), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fintrack.Money{}, fmt.Errorf("%s %q: %w", field, s, fintrack.ErrInvalidInput)
	}
	return fintrack.M(d, fintrack.LocalCurrency), nil
}
