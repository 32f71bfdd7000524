package renderer

import (
	"fmt"
	"strings"

	"github.com/nadim-k/fintrack"
)

// GrowthMarkdown renders a projection: the summary the original showed in
// its labels, then the full month-by-month series.
func GrowthMarkdown(p fintrack.Projection, annualRate fintrack.Percent) string {
	var b strings.Builder
	b.WriteString("# Investment Growth\n\n")
	fmt.Fprintf(&b, "CAGR %s over %d months.\n\n", annualRate, len(p.CompoundedValue))
	fmt.Fprintf(&b, "Final Value: %.2f\n\n", p.FinalValue().AsFloat())
	fmt.Fprintf(&b, "Total Invested: %.2f\n\n", p.TotalInvested().AsFloat())

	rows := make([][]string, 0, len(p.CompoundedValue))
	for i := range p.CompoundedValue {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", p.CumulativeInvested[i].AsFloat()),
			fmt.Sprintf("%.2f", p.CompoundedValue[i].AsFloat()),
		})
	}
	renderTable(&b, []string{"Month", "Total Invested", "Actual Value"}, rows)
	return b.String()
}
