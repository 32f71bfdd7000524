package fintrack

import (
	"fmt"
	"strings"
)

// BudgetInput is the raw user input for one month. All amounts are in the
// local currency; AnnualRent is the yearly figure, the calculator derives the
// monthly share.
type BudgetInput struct {
	Month          string
	Salary         Money
	PhoneBill      Money
	Fuel           Money
	AnnualRent     Money
	LivingExpenses Money
	DebtPrincipal  Money
	DebtCategory   DebtCategory
}

// BudgetEntry is one computed month. The derived fields are always produced
// together from the same input snapshot and never mutated afterwards; the
// ledger only appends and deletes whole entries.
type BudgetEntry struct {
	Month         string
	Salary        Money
	TotalExpenses Money
	Savings       Money
	Invested      Money
	Log           string
}

// ComputeMonth derives a full budget entry from one month of input.
// It is deterministic and does not persist anything; appending the entry to a
// ledger is the caller's business.
//
// The savings figure deliberately reproduces the historical behavior: the
// remaining balance is re-scaled by its own share of the salary
// (savings = remaining^2 / salary when positive), it is NOT the full
// remaining amount. See TestComputeMonth_SavingsReappliesOwnPercentage.
func ComputeMonth(in BudgetInput) (BudgetEntry, error) {
	monthlyRent := in.AnnualRent.Div(Q(12))

	debtPayment, err := MonthlyPayment(in.DebtPrincipal, in.DebtCategory)
	if err != nil {
		return BudgetEntry{}, fmt.Errorf("computing %s: %w", in.Month, err)
	}

	totalExpenses := in.PhoneBill.
		Add(in.Fuel).
		Add(monthlyRent).
		Add(in.LivingExpenses).
		Add(debtPayment)

	// A negative remaining is an overspend, not an error.
	remaining := in.Salary.Sub(totalExpenses)

	var savingsPct Quantity
	if in.Salary.IsPositive() {
		savingsPct = remaining.Ratio(in.Salary).Mul(Q(100))
	}

	savings := M(0, in.Salary.Currency())
	if savingsPct.IsPositive() {
		savings = remaining.Mul(savingsPct.Div(Q(100)))
	}
	invested := remaining.Sub(savings)

	years, annualRate, err := in.DebtCategory.Terms()
	if err != nil {
		return BudgetEntry{}, err
	}

	var log strings.Builder
	fmt.Fprintf(&log, "Month: %s\n", in.Month)
	fmt.Fprintf(&log, "Salary: %.2f\n", in.Salary.AsFloat())
	fmt.Fprintf(&log, "Phone Bill: %.2f\n", in.PhoneBill.AsFloat())
	fmt.Fprintf(&log, "Petrol Money: %.2f\n", in.Fuel.AsFloat())
	fmt.Fprintf(&log, "Annual Rent: %.2f\n", in.AnnualRent.AsFloat())
	fmt.Fprintf(&log, "Monthly Rent: %.2f\n", monthlyRent.AsFloat())
	fmt.Fprintf(&log, "Living Expenses: %.2f\n", in.LivingExpenses.AsFloat())
	fmt.Fprintf(&log, "Debt Amount: %.2f\n", in.DebtPrincipal.AsFloat())
	fmt.Fprintf(&log, "Debt Type: %s\n", in.DebtCategory)
	fmt.Fprintf(&log, "Debt Term (years): %d\n", years)
	fmt.Fprintf(&log, "Interest Rate: %.2f%%\n", annualRate*100)
	fmt.Fprintf(&log, "Monthly Debt Payment: %.2f\n", debtPayment.AsFloat())
	fmt.Fprintf(&log, "Total Expenses: %.2f\n", totalExpenses.AsFloat())
	fmt.Fprintf(&log, "Remaining after Expenses: %.2f\n", remaining.AsFloat())
	fmt.Fprintf(&log, "Savings %%: %.2f\n", savingsPct.AsFloat())
	fmt.Fprintf(&log, "Savings: %.2f\n", savings.AsFloat())
	fmt.Fprintf(&log, "Invested: %.2f\n", invested.AsFloat())

	return BudgetEntry{
		Month:         in.Month,
		Salary:        in.Salary,
		TotalExpenses: totalExpenses,
		Savings:       savings,
		Invested:      invested,
		Log:           log.String(),
	}, nil
}

// SavingsRatePreview recomputes only the savings rate from a possibly
// partial input, for display while the user is still typing. Missing fields
// are zero values and compute as zero. It returns an error instead of
// swallowing it; the caller decides to display 0.00 in that case.
func SavingsRatePreview(in BudgetInput) (Percent, error) {
	monthlyRent := in.AnnualRent.Div(Q(12))
	debtPayment, err := MonthlyPayment(in.DebtPrincipal, in.DebtCategory)
	if err != nil {
		return 0, err
	}
	totalExpenses := in.PhoneBill.
		Add(in.Fuel).
		Add(monthlyRent).
		Add(in.LivingExpenses).
		Add(debtPayment)
	remaining := in.Salary.Sub(totalExpenses)
	if !in.Salary.IsPositive() {
		return 0, nil
	}
	return Percent(remaining.Ratio(in.Salary).Mul(Q(100)).AsFloat()), nil
}
