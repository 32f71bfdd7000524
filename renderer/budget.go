package renderer

import (
	"fmt"
	"strings"

	"github.com/nadim-k/fintrack"
)

// BudgetMarkdown renders the budget ledger as a markdown table, one row per
// month in ledger order. Positions are printed so the delete command can be
// aimed.
func BudgetMarkdown(entries []fintrack.BudgetEntry) string {
	var b strings.Builder
	b.WriteString("# Monthly Budget\n\n")
	if len(entries) == 0 {
		b.WriteString("No entries yet.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			e.Month,
			fmt.Sprintf("%.2f", e.Salary.AsFloat()),
			fmt.Sprintf("%.2f", e.TotalExpenses.AsFloat()),
			fmt.Sprintf("%.2f", e.Savings.AsFloat()),
			fmt.Sprintf("%.2f", e.Invested.AsFloat()),
		})
	}
	renderTable(&b, []string{"#", "Month", "Salary", "Expenses", "Savings", "Invested"}, rows)
	return b.String()
}

// LogsMarkdown renders every entry's computation trace, one section per
// entry, the trace fenced so glamour leaves it verbatim.
func LogsMarkdown(entries []fintrack.BudgetEntry) string {
	var b strings.Builder
	b.WriteString("# Calculation Logs\n\n")
	if len(entries) == 0 {
		b.WriteString("No logs available.\n")
		return b.String()
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "## Entry %d: %s\n\n", i+1, e.Month)
		b.WriteString("```\n")
		b.WriteString(e.Log)
		b.WriteString("```\n\n")
	}
	return b.String()
}
