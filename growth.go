package fintrack

import "fmt"

// Projection is the result of simulating monthly compounding over a series
// of invested amounts. Both sequences have one value per period; callers
// that only want a summary read the last elements.
type Projection struct {
	CumulativeInvested []Money
	CompoundedValue    []Money
}

// FinalValue returns the compounded value after the last period, or zero
// money for an empty projection.
func (p Projection) FinalValue() Money {
	if len(p.CompoundedValue) == 0 {
		return Money{}
	}
	return p.CompoundedValue[len(p.CompoundedValue)-1]
}

// TotalInvested returns the capital invested over all periods, or zero
// money for an empty projection.
func (p Projection) TotalInvested() Money {
	if len(p.CumulativeInvested) == 0 {
		return Money{}
	}
	return p.CumulativeInvested[len(p.CumulativeInvested)-1]
}

// Project simulates compounding of the monthly invested amounts under a
// fixed annual growth rate (as a fraction, 0.12 for 12%) over the given
// number of monthly periods.
//
// Compounding applies every period, including periods past the end of the
// invested series: the balance keeps growing with zero new contributions.
func Project(monthlyInvested []Money, annualRate Quantity, periods int) (Projection, error) {
	if periods <= 0 || len(monthlyInvested) == 0 {
		return Projection{}, fmt.Errorf("cannot project %d periods over %d invested amounts: %w",
			periods, len(monthlyInvested), ErrInvalidPeriod)
	}

	factor := Q(1).Add(annualRate.Div(Q(12)))
	currency := monthlyInvested[0].Currency()

	total := M(0, currency)
	invested := M(0, currency)
	p := Projection{
		CumulativeInvested: make([]Money, 0, periods),
		CompoundedValue:    make([]Money, 0, periods),
	}
	for i := 0; i < periods; i++ {
		if i < len(monthlyInvested) {
			total = total.Add(monthlyInvested[i])
			invested = invested.Add(monthlyInvested[i])
		}
		total = total.Mul(factor)
		p.CompoundedValue = append(p.CompoundedValue, total)
		p.CumulativeInvested = append(p.CumulativeInvested, invested)
	}
	return p, nil
}
