package fintrack

import (
	"strings"
	"testing"
)

func sampleBudgetInput() BudgetInput {
	return BudgetInput{
		Month:          "March",
		Salary:         M(20_000, LocalCurrency),
		PhoneBill:      M(300, LocalCurrency),
		Fuel:           M(450, LocalCurrency),
		AnnualRent:     M(60_000, LocalCurrency),
		LivingExpenses: M(3_500, LocalCurrency),
		DebtPrincipal:  M(40_000, LocalCurrency),
		DebtCategory:   PersonalDebt,
	}
}

func TestComputeMonth_Identity(t *testing.T) {
	entry, err := ComputeMonth(sampleBudgetInput())
	if err != nil {
		t.Fatalf("ComputeMonth() unexpected error: %v", err)
	}
	// Expenses, savings and invested always partition the salary.
	sum := entry.TotalExpenses.Add(entry.Savings).Add(entry.Invested)
	if want := sampleBudgetInput().Salary; !sum.Equal(want) {
		t.Errorf("expenses+savings+invested = %v, want the salary %v", sum, want)
	}
}

func TestComputeMonth_Deterministic(t *testing.T) {
	first, err := ComputeMonth(sampleBudgetInput())
	if err != nil {
		t.Fatalf("ComputeMonth() unexpected error: %v", err)
	}
	second, err := ComputeMonth(sampleBudgetInput())
	if err != nil {
		t.Fatalf("ComputeMonth() unexpected error: %v", err)
	}
	if !first.Savings.Equal(second.Savings) || !first.Invested.Equal(second.Invested) ||
		!first.TotalExpenses.Equal(second.TotalExpenses) || first.Log != second.Log {
		t.Errorf("the same input computed twice gave different entries:\n%+v\n%+v", first, second)
	}
}

// The savings figure is the remaining balance re-scaled by its own share of
// the salary, not the full remaining amount. With half the salary remaining,
// savings is a quarter of the salary.
func TestComputeMonth_SavingsReappliesOwnPercentage(t *testing.T) {
	entry, err := ComputeMonth(BudgetInput{
		Month:          "April",
		Salary:         M(1_000, LocalCurrency),
		LivingExpenses: M(500, LocalCurrency),
		DebtPrincipal:  M(0, LocalCurrency),
		DebtCategory:   PersonalDebt,
	})
	if err != nil {
		t.Fatalf("ComputeMonth() unexpected error: %v", err)
	}
	if want := M(250, LocalCurrency); !entry.Savings.Equal(want) {
		t.Errorf("Savings = %v, want %v (remaining 500 scaled by its 50%% share)", entry.Savings, want)
	}
	if want := M(250, LocalCurrency); !entry.Invested.Equal(want) {
		t.Errorf("Invested = %v, want %v", entry.Invested, want)
	}
	if !strings.Contains(entry.Log, "Savings %: 50.00\n") {
		t.Errorf("Log is missing the savings rate line:\n%s", entry.Log)
	}
}

func TestComputeMonth_ZeroSalary(t *testing.T) {
	entry, err := ComputeMonth(BudgetInput{
		Month:          "May",
		Salary:         M(0, LocalCurrency),
		LivingExpenses: M(100, LocalCurrency),
		DebtPrincipal:  M(0, LocalCurrency),
		DebtCategory:   PersonalDebt,
	})
	if err != nil {
		t.Fatalf("ComputeMonth() unexpected error: %v", err)
	}
	if !entry.Savings.IsZero() {
		t.Errorf("Savings = %v, want 0 when the salary is zero", entry.Savings)
	}
	if want := M(-100, LocalCurrency); !entry.Invested.Equal(want) {
		t.Errorf("Invested = %v, want %v (the overspend flows through)", entry.Invested, want)
	}
}

func TestComputeMonth_Overspend(t *testing.T) {
	// Spending above the salary leaves a negative remaining: no savings, the
	// negative balance lands in the invested figure.
	entry, err := ComputeMonth(BudgetInput{
		Month:          "June",
		Salary:         M(1_000, LocalCurrency),
		LivingExpenses: M(1_500, LocalCurrency),
		DebtPrincipal:  M(0, LocalCurrency),
		DebtCategory:   PersonalDebt,
	})
	if err != nil {
		t.Fatalf("ComputeMonth() unexpected error: %v", err)
	}
	if !entry.Savings.IsZero() {
		t.Errorf("Savings = %v, want 0 on overspend", entry.Savings)
	}
	if want := M(-500, LocalCurrency); !entry.Invested.Equal(want) {
		t.Errorf("Invested = %v, want %v", entry.Invested, want)
	}
}

func TestComputeMonth_Log(t *testing.T) {
	entry, err := ComputeMonth(sampleBudgetInput())
	if err != nil {
		t.Fatalf("ComputeMonth() unexpected error: %v", err)
	}
	for _, line := range []string{
		"Month: March\n",
		"Salary: 20000.00\n",
		"Monthly Rent: 5000.00\n",
		"Debt Type: personal\n",
		"Debt Term (years): 4\n",
		"Interest Rate: 7.49%\n",
	} {
		if !strings.Contains(entry.Log, line) {
			t.Errorf("Log is missing %q:\n%s", line, entry.Log)
		}
	}
}

func TestSavingsRatePreview(t *testing.T) {
	rate, err := SavingsRatePreview(BudgetInput{
		Salary:         M(1_000, LocalCurrency),
		LivingExpenses: M(500, LocalCurrency),
		DebtCategory:   PersonalDebt,
	})
	if err != nil {
		t.Fatalf("SavingsRatePreview() unexpected error: %v", err)
	}
	if want := Percent(50); !rate.Equal(want) {
		t.Errorf("SavingsRatePreview() = %v, want %v", rate, want)
	}
}

func TestSavingsRatePreview_EmptyInput(t *testing.T) {
	rate, err := SavingsRatePreview(BudgetInput{DebtCategory: PersonalDebt})
	if err != nil {
		t.Fatalf("SavingsRatePreview() unexpected error: %v", err)
	}
	if rate != 0 {
		t.Errorf("SavingsRatePreview() = %v, want 0 on an empty input", rate)
	}
}

func TestSavingsRatePreview_UnknownCategory(t *testing.T) {
	if _, err := SavingsRatePreview(BudgetInput{DebtCategory: DebtCategory(99)}); err == nil {
		t.Error("SavingsRatePreview() expected an error for an unknown debt category")
	}
}
