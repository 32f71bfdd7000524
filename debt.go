package fintrack

import (
	"fmt"
	"math"
)

// DebtCategory selects the repayment policy applied to a lump debt amount.
type DebtCategory int

const (
	// PersonalDebt is repaid over 4 years.
	PersonalDebt DebtCategory = iota
	// HousingDebt is repaid over 25 years.
	HousingDebt
)

func (c DebtCategory) String() string {
	switch c {
	case PersonalDebt:
		return "personal"
	case HousingDebt:
		return "housing"
	default:
		return "unknown"
	}
}

// ParseDebtCategory parses a string into a DebtCategory.
func ParseDebtCategory(s string) (DebtCategory, error) {
	switch s {
	case "personal":
		return PersonalDebt, nil
	case "housing":
		return HousingDebt, nil
	default:
		return 0, fmt.Errorf("unknown debt category: %q", s)
	}
}

// debtTerms is one row of the repayment policy table. The table is a policy,
// not a law: both categories currently carry the same annual rate.
type debtTerms struct {
	years      int
	annualRate float64
}

var debtPolicy = map[DebtCategory]debtTerms{
	PersonalDebt: {years: 4, annualRate: 7.49 / 100},
	HousingDebt:  {years: 25, annualRate: 7.49 / 100},
}

// Terms returns the repayment term and annual interest rate for the category.
func (c DebtCategory) Terms() (years int, annualRate float64, err error) {
	t, ok := debtPolicy[c]
	if !ok {
		return 0, 0, fmt.Errorf("no repayment policy for category %d", int(c))
	}
	return t.years, t.annualRate, nil
}

// MonthlyPayment converts a lump debt amount into a fixed monthly payment
// under the category's repayment policy.
//
// The caller is responsible for passing a non-negative principal; a negative
// value flows through the formula unchecked.
func MonthlyPayment(principal Money, category DebtCategory) (Money, error) {
	years, annualRate, err := category.Terms()
	if err != nil {
		return Money{}, err
	}
	return amortizedPayment(principal, years*12, annualRate)
}

// amortizedPayment computes the standard fixed-payment amortization
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n the number of months. The (1+r)^n factor is
// computed through float64 math.Pow, monetary arithmetic stays in decimal.
func amortizedPayment(principal Money, months int, annualRate float64) (Money, error) {
	if months <= 0 {
		return Money{}, fmt.Errorf("cannot amortize over %d months: %w", months, ErrInvalidTerm)
	}
	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		// Zero-interest: even split.
		return principal.Div(Q(months)), nil
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	payment := principal.AsFloat() * monthlyRate * factor / (factor - 1)
	return M(payment, principal.Currency()), nil
}
