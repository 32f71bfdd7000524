package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nadim-k/fintrack"
)

type previewCmd struct {
	budgetFlags
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "preview the savings rate for partial input" }
func (*previewCmd) Usage() string {
	return `ftk preview [-salary <amount>] [-phone <amount>] [-petrol <amount>] [-rent <annual>] [-living <amount>] [-debt <amount>] [-debt-type personal|housing]

  Recomputes only the savings rate from whatever fields are filled in.
  Missing fields count as zero. Never fails: any computation problem
  displays as 0.00.
`
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The preview runs on every keystroke in the original UI; it always
	// prints a rate, degrading to 0.00 on any error.
	rate := fintrack.Percent(0)
	if in, err := c.input(); err == nil {
		if r, err := fintrack.SavingsRatePreview(in); err == nil {
			rate = r
		}
	}
	fmt.Printf("%.2f\n", float64(rate))
	return subcommands.ExitSuccess
}
