package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/nadim-k/fintrack"
)

// budgetFlags holds the month-input flags shared by the add and preview
// commands.
type budgetFlags struct {
	month    string
	salary   string
	phone    string
	petrol   string
	rent     string
	living   string
	debt     string
	debtType string
}

func (b *budgetFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&b.month, "m", time.Now().Month().String(), "Month label for the entry.")
	f.StringVar(&b.salary, "salary", "", "Monthly salary.")
	f.StringVar(&b.phone, "phone", "", "Phone bill.")
	f.StringVar(&b.petrol, "petrol", "", "Petrol money.")
	f.StringVar(&b.rent, "rent", "", "Annual rent.")
	f.StringVar(&b.living, "living", "", "Living expenses.")
	f.StringVar(&b.debt, "debt", "", "Outstanding debt amount.")
	f.StringVar(&b.debtType, "debt-type", "personal", "Debt type: personal or housing.")
}

// input parses the flags into a budget input. Empty fields parse as zero;
// a field that is present but not numeric is a validation error.
func (b *budgetFlags) input() (fintrack.BudgetInput, error) {
	in := fintrack.BudgetInput{Month: b.month}

	var err error
	if in.Salary, err = parseAmount("salary", b.salary); err != nil {
		return in, err
	}
	if in.PhoneBill, err = parseAmount("phone", b.phone); err != nil {
		return in, err
	}
	if in.Fuel, err = parseAmount("petrol", b.petrol); err != nil {
		return in, err
	}
	if in.AnnualRent, err = parseAmount("rent", b.rent); err != nil {
		return in, err
	}
	if in.LivingExpenses, err = parseAmount("living", b.living); err != nil {
		return in, err
	}
	if in.DebtPrincipal, err = parseAmount("debt", b.debt); err != nil {
		return in, err
	}
	if in.DebtCategory, err = fintrack.ParseDebtCategory(b.debtType); err != nil {
		return in, err
	}
	if in.Salary.IsNegative() || in.PhoneBill.IsNegative() || in.Fuel.IsNegative() ||
		in.AnnualRent.IsNegative() || in.LivingExpenses.IsNegative() || in.DebtPrincipal.IsNegative() {
		return in, fmt.Errorf("amounts must not be negative: %w", fintrack.ErrInvalidInput)
	}
	return in, nil
}
