package fintrack

import (
	"errors"
	"math"
	"testing"
)

func TestMonthlyPayment_AmortizesToZero(t *testing.T) {
	// Re-simulate the loan forward: paying the computed amount every month
	// must clear the principal (plus interest) over the full term.
	testCases := []struct {
		name      string
		principal float64
		category  DebtCategory
	}{
		{"personal loan", 50_000, PersonalDebt},
		{"housing loan", 800_000, HousingDebt},
		{"small personal loan", 1_000, PersonalDebt},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payment, err := MonthlyPayment(M(tc.principal, LocalCurrency), tc.category)
			if err != nil {
				t.Fatalf("MonthlyPayment() unexpected error: %v", err)
			}
			if !payment.IsPositive() {
				t.Fatalf("MonthlyPayment() = %v, want a positive payment", payment)
			}

			years, annualRate, err := tc.category.Terms()
			if err != nil {
				t.Fatalf("Terms() unexpected error: %v", err)
			}
			monthlyRate := annualRate / 12
			remaining := tc.principal
			for month := 0; month < years*12; month++ {
				interest := remaining * monthlyRate
				remaining -= payment.AsFloat() - interest
			}
			if math.Abs(remaining) > tc.principal*1e-9 {
				t.Errorf("after %d payments of %v the balance is %v, want 0", years*12, payment, remaining)
			}
		})
	}
}

func TestMonthlyPayment_ZeroPrincipal(t *testing.T) {
	payment, err := MonthlyPayment(M(0, LocalCurrency), PersonalDebt)
	if err != nil {
		t.Fatalf("MonthlyPayment() unexpected error: %v", err)
	}
	if !payment.IsZero() {
		t.Errorf("MonthlyPayment(0) = %v, want 0", payment)
	}
}

func Test_amortizedPayment_ZeroRate(t *testing.T) {
	payment, err := amortizedPayment(M(1200, LocalCurrency), 12, 0)
	if err != nil {
		t.Fatalf("amortizedPayment() unexpected error: %v", err)
	}
	if want := M(100, LocalCurrency); !payment.Equal(want) {
		t.Errorf("amortizedPayment() = %v, want %v: zero interest splits evenly", payment, want)
	}
}

func Test_amortizedPayment_ZeroMonths(t *testing.T) {
	_, err := amortizedPayment(M(1200, LocalCurrency), 0, 0.0749)
	if !errors.Is(err, ErrInvalidTerm) {
		t.Errorf("amortizedPayment() error = %v, want ErrInvalidTerm", err)
	}
}

func TestParseDebtCategory(t *testing.T) {
	for _, cat := range []DebtCategory{PersonalDebt, HousingDebt} {
		parsed, err := ParseDebtCategory(cat.String())
		if err != nil {
			t.Fatalf("ParseDebtCategory(%q) unexpected error: %v", cat, err)
		}
		if parsed != cat {
			t.Errorf("ParseDebtCategory(%q) = %v, want %v", cat, parsed, cat)
		}
	}
	if _, err := ParseDebtCategory("student"); err == nil {
		t.Error("ParseDebtCategory(\"student\") expected an error")
	}
}
