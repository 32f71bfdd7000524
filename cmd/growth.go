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

type growthCmd struct {
	cagr    float64
	periods int
}

func (*growthCmd) Name() string     { return "growth" }
func (*growthCmd) Synopsis() string { return "project the growth of the invested amounts" }
func (*growthCmd) Usage() string {
	return `ftk growth -cagr <percent> -months <n>

  Compounds the recorded invested amounts month by month under the given
  annual growth rate, and keeps compounding after the recorded months run
  out.
`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.cagr, "cagr", 0, "Assumed annual growth rate, in percent (12 for 12%).")
	f.IntVar(&c.periods, "months", 0, "Number of months to project.")
}

func (c *growthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := fintrack.LoadLedger(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	projection, err := fintrack.Project(ledger.InvestedSeries(), fintrack.Q(c.cagr/100), c.periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.GrowthMarkdown(projection, fintrack.Percent(c.cagr)))
	return subcommands.ExitSuccess
}
