package renderer

import (
	"fmt"
	"strings"

	"github.com/nadim-k/fintrack"
)

// DashboardMarkdown renders a portfolio snapshot: the headline totals, then
// one valuation line per held asset.
func DashboardMarkdown(s *fintrack.DashboardSnapshot) string {
	var b strings.Builder
	b.WriteString("# Wallet Dashboard\n\n")
	fmt.Fprintf(&b, "Total Holdings: %s | Wallet PnL: %s\n\n",
		s.TotalValue, s.AverageDailyPnL.SignedString())
	if len(s.Holdings) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(s.Holdings))
	for _, h := range s.Holdings {
		rows = append(rows, []string{
			h.Asset,
			h.Units.String(),
			fmt.Sprintf("%.4f", h.PriceUSD.AsFloat()),
			fmt.Sprintf("%.4f", h.PriceAED.AsFloat()),
			h.DailyPnL.SignedString(),
			fmt.Sprintf("%.2f", h.Value.AsFloat()),
		})
	}
	renderTable(&b, []string{"Asset", "Total", "Price (USD)", "Price (AED)", "Daily PnL (%)", "Holding Value (AED)"}, rows)
	return b.String()
}
